package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"siteguard-engine/internal/api/handlers"
	apimiddleware "siteguard-engine/internal/api/middleware"
	"siteguard-engine/internal/config"
	"siteguard-engine/internal/infrastructure/cache"
	"siteguard-engine/pkg/logger"
)

// Router holds dependencies for the API router
type Router struct {
	config   config.Config
	handlers *handlers.Handlers
	cache    *cache.RedisCache
	logger   *logger.Logger
}

// NewRouter creates a new Router instance
func NewRouter(cfg config.Config, h *handlers.Handlers, c *cache.RedisCache, log *logger.Logger) *Router {
	return &Router{
		config:   cfg,
		handlers: h,
		cache:    c,
		logger:   log.WithComponent("router"),
	}
}

// Setup sets up the Chi router with all routes and middleware
func (r *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Core middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(apimiddleware.Logger(r.logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	// CORS
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   r.config.CORS.AllowedOrigins,
		AllowedMethods:   r.config.CORS.AllowedMethods,
		AllowedHeaders:   r.config.CORS.AllowedHeaders,
		AllowCredentials: r.config.CORS.AllowCredentials,
		MaxAge:           r.config.CORS.MaxAge,
	}))

	// Rate limiting
	if r.config.RateLimit.Enabled && r.cache != nil {
		router.Use(apimiddleware.RateLimiter(r.cache, r.config.RateLimit))
	}

	// Public routes
	router.Group(func(pub chi.Router) {
		pub.Get("/health", r.handlers.Health.Check)
		pub.Get("/ready", r.handlers.Health.Ready)
	})

	// API v1 routes (authenticated)
	router.Route("/api/v1", func(api chi.Router) {
		if r.config.Auth.Enabled {
			api.Use(apimiddleware.APIKeyAuth(r.config.Auth.APIKey))
		}

		// Assessment lifecycle and scoring
		api.Route("/assessments", func(assessments chi.Router) {
			assessments.Post("/", r.handlers.Assessments.Create)
			assessments.Get("/", r.handlers.Assessments.List)
			assessments.Get("/{id}", r.handlers.Assessments.Get)
			assessments.Put("/{id}/responses", r.handlers.Assessments.UpdateResponses)
			assessments.Delete("/{id}", r.handlers.Assessments.Delete)

			assessments.Post("/{id}/score", r.handlers.Assessments.Score)
			assessments.Get("/{id}/runs", r.handlers.Assessments.ListRuns)
			assessments.Get("/{id}/runs/latest", r.handlers.Assessments.LatestRun)
			assessments.Get("/{id}/runs/{runID}", r.handlers.Assessments.GetRun)
		})

		// Stateless single-threat scoring
		api.Post("/score", r.handlers.Score.Score)

		// Catalog browsing and hot reload
		api.Route("/catalog", func(cat chi.Router) {
			cat.Get("/facilities", r.handlers.Catalog.ListFacilities)
			cat.Get("/facilities/{type}/threats", r.handlers.Catalog.ListThreats)
			cat.Get("/controls", r.handlers.Catalog.ListControls)
			cat.Get("/checklist", r.handlers.Catalog.Checklist)
			cat.Post("/reload", r.handlers.Catalog.Reload)
		})
	})

	return router
}
