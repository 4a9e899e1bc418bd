package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/albapepper/sportspeed/internal/api/handler"
	"github.com/albapepper/sportspeed/internal/cache"
	"github.com/albapepper/sportspeed/internal/config"
	"github.com/albapepper/sportspeed/internal/performance"
	"github.com/albapepper/sportspeed/internal/session"
	"github.com/albapepper/sportspeed/internal/store"
)

// Deps are the router's shared dependencies. Page serves the HTML builder
// screen at / and may be nil. RateLimiter is used when rate limiting is
// enabled; nil builds a private one that is never swept.
type Deps struct {
	Store       store.Store
	Cache       *cache.Cache
	Config      *config.Config
	Generator   *session.Generator
	Projector   *performance.Projector
	Logger      *slog.Logger
	Page        http.Handler
	RateLimiter *RateLimiter
}

// NewRouter creates and configures the Chi router with all middleware and routes.
func NewRouter(d Deps) *chi.Mux {
	cfg := d.Config
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TimingMiddleware)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "If-None-Match", "Cache-Control"},
		ExposedHeaders:   []string{"X-Process-Time", "X-Cache", "X-Plan-Saved", "Location", "ETag"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		rl := d.RateLimiter
		if rl == nil {
			rl = NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
		}
		r.Use(rl.Middleware)
	}

	// --- Handler dependencies ---
	h := handler.New(d.Store, d.Cache, cfg, d.Generator, d.Projector, d.Logger)

	// --- Routes ---

	// Builder screen
	if d.Page != nil {
		r.Method(http.MethodGet, "/", d.Page)
	}

	// Health checks
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/cache", h.HealthCheckCache)
		r.Get("/store", h.HealthCheckStore)
	})

	// Swagger UI
	r.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL("/docs/doc.json")))

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/", h.Root)

		// Catalog
		r.Get("/sports", h.GetSports)
		r.Get("/sports/{name}", h.GetSport)

		// Sessions (never cached)
		r.Get("/sessions", h.GetSessions)
		r.Get("/sessions/speed", h.GetSpeedSession)
		r.Get("/sessions/strength", h.GetStrengthSession)
		r.Get("/sessions/endurance", h.GetEnduranceSession)

		// Periodization
		r.Get("/phases", h.GetPhases)
		r.Get("/phases/{week}", h.GetPhase)

		// Builder screen model
		r.Get("/builder", h.GetBuilder)

		// Performance analytics (projection is random per request)
		r.Get("/performance", h.GetPerformance)

		// Plans
		r.Route("/plans", func(r chi.Router) {
			r.Get("/", h.ListPlans)
			r.Post("/", h.CreatePlan)
			r.Post("/preview", h.PreviewPlan)
			r.Get("/{id}", h.GetPlan)
			r.Delete("/{id}", h.DeletePlan)
		})
	})

	return r
}
