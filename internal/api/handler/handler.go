// Package handler provides HTTP handlers for all API endpoints.
// Deterministic responses (catalog, phases, stored plans) are marshaled once
// and served from the in-memory cache with ETags. Generated sessions are
// never cached.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/albapepper/sportspeed/internal/api/respond"
	"github.com/albapepper/sportspeed/internal/cache"
	"github.com/albapepper/sportspeed/internal/config"
	"github.com/albapepper/sportspeed/internal/performance"
	"github.com/albapepper/sportspeed/internal/session"
	"github.com/albapepper/sportspeed/internal/store"
)

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	store  store.Store
	cache  *cache.Cache
	cfg    *config.Config
	gen    *session.Generator
	proj   *performance.Projector
	logger *slog.Logger
}

// New creates a Handler with shared dependencies. A nil store disables plan
// persistence; a nil generator or projector uses the global random source.
func New(st store.Store, c *cache.Cache, cfg *config.Config, gen *session.Generator, proj *performance.Projector, logger *slog.Logger) *Handler {
	if st == nil {
		st = store.Disabled{}
	}
	if gen == nil {
		gen = session.Default
	}
	if proj == nil {
		proj = performance.Default
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		store:  st,
		cache:  c,
		cfg:    cfg,
		gen:    gen,
		proj:   proj,
		logger: logger,
	}
}

// Root serves API info at /api/v1/.
// @Summary API root info
// @Description Returns API name, version, status, and the endpoint groups.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	_, disabled := h.store.(store.Disabled)
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":    "Sport Speed Training API",
		"version": "1.0.0",
		"status":  "running",
		"docs":    "/docs",
		"plan_store": map[string]interface{}{
			"backend": h.cfg.PlanStore,
			"enabled": !disabled,
		},
		"endpoints": []string{
			"/api/v1/sports",
			"/api/v1/sessions",
			"/api/v1/phases",
			"/api/v1/builder",
			"/api/v1/performance",
			"/api/v1/plans",
		},
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Description Returns basic health status and timestamp.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckStore verifies plan store connectivity.
// @Summary Plan store health check
// @Description Pings the configured plan store (SQLite or Postgres).
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/store [get]
func (h *Handler) HealthCheckStore(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.store.(store.Disabled); ok {
		respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
			"status":    "healthy",
			"store":     "disabled",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	if err := h.store.Ping(r.Context()); err != nil {
		h.logger.Warn("Store health check failed", "error", err)
		respond.WriteJSONObject(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":    "unhealthy",
			"store":     "disconnected",
			"error":     "Plan store connection check failed",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"store":     "connected",
		"backend":   h.cfg.PlanStore,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckCache returns cache statistics.
// @Summary Cache health check
// @Description Returns in-memory cache statistics (keys, hits, misses).
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [get]
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"cache":     h.cache.Stats(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// serveCached writes the cached body for key, or marshals v, caches it and
// writes it. Honors If-None-Match.
func (h *Handler) serveCached(w http.ResponseWriter, r *http.Request, key string, ttl time.Duration, build func() (interface{}, error)) {
	if data, etag, ok := h.cache.Get(key); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, ttl, true)
		return
	}

	v, err := build()
	if err != nil {
		h.writeStoreError(w, err)
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, respond.CodeInternal, "Failed to encode response")
		return
	}

	etag := h.cache.Set(key, data, ttl)
	if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
		respond.WriteNotModified(w, etag)
		return
	}
	respond.WriteJSON(w, data, etag, ttl, false)
}
