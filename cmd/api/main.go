// Command api is the Sport Speed training API server.
//
// Usage:
//
//	sportspeed-api
//	PLAN_STORE=postgres DATABASE_URL=postgres://... sportspeed-api

// @title Sport Speed Training API
// @version 1.0.0
// @description Speed training for high school athletes: sport catalog, weekly speed/strength/endurance sessions, the 16-week periodization table and stored 16-week plans.
// @host localhost:8000
// @BasePath /api/v1
// @schemes http https
// @contact.name Sport Speed
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/albapepper/sportspeed/internal/api"
	"github.com/albapepper/sportspeed/internal/cache"
	"github.com/albapepper/sportspeed/internal/config"
	"github.com/albapepper/sportspeed/internal/listener"
	"github.com/albapepper/sportspeed/internal/maintenance"
	"github.com/albapepper/sportspeed/internal/performance"
	"github.com/albapepper/sportspeed/internal/session"
	"github.com/albapepper/sportspeed/internal/store"
	"github.com/albapepper/sportspeed/internal/web"

	_ "github.com/albapepper/sportspeed/docs" // swagger docs
)

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	appCache := cache.New(cfg.CacheEnabled)
	logger.Info("Cache initialized", "enabled", cfg.CacheEnabled)

	logger.Info("Opening plan store...", "backend", cfg.PlanStore)
	st, err := store.Open(ctx, cfg)
	if err != nil {
		logger.Error("Failed to open plan store", "backend", cfg.PlanStore, "error", err)
		os.Exit(1)
	}
	defer st.Close()

	// Other instances writing to the same database invalidate our plan cache.
	if cfg.PlanStore == config.StorePostgres {
		go listener.Start(ctx, cfg.DatabaseURL, appCache, logger)
	}

	var limiter *api.RateLimiter
	var sweeper maintenance.Sweeper
	if cfg.RateLimitEnabled {
		limiter = api.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
		sweeper = limiter
	}

	maintCfg := maintenance.DefaultConfig()
	maintCfg.PruneInterval = cfg.PruneInterval
	maintCfg.Retention = cfg.PlanRetention
	go maintenance.Start(ctx, st, appCache, sweeper, maintCfg, logger)

	page, err := web.New(session.Default, performance.Default, logger)
	if err != nil {
		logger.Error("Failed to load builder page", "error", err)
		os.Exit(1)
	}

	router := api.NewRouter(api.Deps{
		Store:       st,
		Cache:       appCache,
		Config:      cfg,
		Generator:   session.Default,
		Projector:   performance.Default,
		Logger:      logger,
		Page:        page,
		RateLimiter: limiter,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting Sport Speed API",
			"addr", cfg.Addr(),
			"environment", cfg.Environment,
			"plan_store", cfg.PlanStore,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
