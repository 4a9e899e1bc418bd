package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"API_HOST", "API_PORT", "PORT", "ENVIRONMENT", "DEBUG", "CORS_ALLOW_ORIGINS",
		"RATE_LIMIT_ENABLED", "RATE_LIMIT_REQUESTS", "RATE_LIMIT_WINDOW", "CACHE_ENABLED",
		"PLAN_STORE", "SQLITE_DATA_DIR", "DATABASE_URL", "DB_POOL_MIN_CONNS",
		"DB_POOL_MAX_CONNS", "DB_POOL_MAX_LIFE_MINUTES", "PLAN_RETENTION_DAYS",
		"PRUNE_INTERVAL_MINUTES",
	} {
		t.Setenv(k, "")
	}
}

// TestDefaults verifies default values when no environment is set.
func TestDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIPort != 8000 {
		t.Errorf("APIPort = %d, want 8000", cfg.APIPort)
	}
	if cfg.Addr() != "0.0.0.0:8000" {
		t.Errorf("Addr() = %q", cfg.Addr())
	}
	if cfg.PlanStore != StoreSQLite {
		t.Errorf("PlanStore = %q, want sqlite", cfg.PlanStore)
	}
	if cfg.RateLimitWindow != time.Minute {
		t.Errorf("RateLimitWindow = %v, want 1m", cfg.RateLimitWindow)
	}
	if cfg.PlanRetention != 180*24*time.Hour {
		t.Errorf("PlanRetention = %v", cfg.PlanRetention)
	}
	if !cfg.CacheEnabled || !cfg.RateLimitEnabled {
		t.Error("cache and rate limiting should default to enabled")
	}
	if cfg.IsProduction() {
		t.Error("IsProduction() = true for default environment")
	}
}

// TestEnvOverride verifies that environment variables override defaults.
func TestEnvOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("CACHE_ENABLED", "false")
	t.Setenv("PLAN_STORE", "NONE")
	t.Setenv("PLAN_RETENTION_DAYS", "0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIPort != 9090 {
		t.Errorf("APIPort = %d, want 9090 from PORT", cfg.APIPort)
	}
	if !cfg.IsProduction() {
		t.Error("IsProduction() = false")
	}
	if len(cfg.CORSAllowOrigins) != 2 || cfg.CORSAllowOrigins[1] != "https://b.example" {
		t.Errorf("CORSAllowOrigins = %v", cfg.CORSAllowOrigins)
	}
	if cfg.CacheEnabled {
		t.Error("CacheEnabled = true, want false")
	}
	if cfg.PlanStore != StoreNone {
		t.Errorf("PlanStore = %q, want none", cfg.PlanStore)
	}
	if cfg.PlanRetention != 0 {
		t.Errorf("PlanRetention = %v, want 0", cfg.PlanRetention)
	}
}

func TestInvalidValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_PORT", "not-a-number")
	t.Setenv("DEBUG", "maybe")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIPort != 8000 || cfg.Debug {
		t.Errorf("APIPort=%d Debug=%v, want defaults", cfg.APIPort, cfg.Debug)
	}
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"postgres without url", map[string]string{"PLAN_STORE": "postgres"}},
		{"unknown store", map[string]string{"PLAN_STORE": "redis"}},
		{"port out of range", map[string]string{"API_PORT": "70000"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestPostgresStore(t *testing.T) {
	clearEnv(t)
	t.Setenv("PLAN_STORE", "postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/speed")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.PlanStore != StorePostgres || cfg.DatabaseURL == "" {
		t.Errorf("cfg = %+v", cfg)
	}
}
