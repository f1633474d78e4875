package router

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/straye-as/storefront/internal/config"
	"github.com/straye-as/storefront/internal/database"
	"github.com/straye-as/storefront/internal/http/handler"
	"github.com/straye-as/storefront/internal/http/middleware"
	"github.com/straye-as/storefront/internal/session"
	"github.com/straye-as/storefront/internal/storage"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/straye-as/storefront/docs" // Import generated swagger docs
)

// healthCheckTimeout bounds each dependency probe of /health/ready
const healthCheckTimeout = 5 * time.Second

type Router struct {
	cfg             *config.Config
	logger          *zap.Logger
	db              *gorm.DB
	store           storage.KeyValue
	sessions        *session.Manager
	rateLimiter     *middleware.RateLimiter
	cartHandler     *handler.CartHandler
	checkoutHandler *handler.CheckoutHandler
}

// NewRouter wires the HTTP handlers. db is nil unless carts are stored in the database.
func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	store storage.KeyValue,
	sessions *session.Manager,
	rateLimiter *middleware.RateLimiter,
	cartHandler *handler.CartHandler,
	checkoutHandler *handler.CheckoutHandler,
) *Router {
	return &Router{
		cfg:             cfg,
		logger:          logger,
		db:              db,
		store:           store,
		sessions:        sessions,
		rateLimiter:     rateLimiter,
		cartHandler:     cartHandler,
		checkoutHandler: checkoutHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.LimitByIP)

	// Health check (basic liveness probe)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Readiness probe (checks all dependencies)
	r.Get("/health/ready", rt.ready)

	// Swagger documentation
	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Session(&rt.cfg.Session, rt.logger))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", rt.cartHandler.Get)
			r.Delete("/", rt.cartHandler.Clear)
			r.Get("/count", rt.cartHandler.Count)
			r.Post("/items", rt.cartHandler.AddItem)
			r.Put("/items", rt.cartHandler.UpdateItem)
			r.Delete("/items", rt.cartHandler.RemoveItem)
		})

		r.Post("/checkout", rt.checkoutHandler.Checkout)
		r.Post("/contact", rt.checkoutHandler.Contact)
	})

	return r
}

func (rt *Router) ready(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]interface{})
	allHealthy := true

	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	// Check cart storage
	if err := storage.Check(ctx, rt.store); err != nil {
		rt.logger.Error("Storage health check failed", zap.Error(err))
		checks["storage"] = map[string]interface{}{
			"status": "unhealthy",
			"mode":   rt.cfg.Storage.Mode,
			"error":  err.Error(),
		}
		allHealthy = false
	} else {
		checks["storage"] = map[string]interface{}{
			"status": "healthy",
			"mode":   rt.cfg.Storage.Mode,
		}
	}

	// Check database (database storage mode only)
	if rt.db != nil {
		stats, err := database.HealthCheckWithStats(rt.db)
		if err != nil {
			rt.logger.Error("Database health check failed", zap.Error(err))
			checks["database"] = map[string]interface{}{
				"status": "unhealthy",
				"error":  err.Error(),
			}
			allHealthy = false
		} else {
			checks["database"] = map[string]interface{}{
				"status":           "healthy",
				"open_connections": stats.OpenConnections,
				"in_use":           stats.InUse,
				"idle":             stats.Idle,
				"wait_count":       stats.WaitCount,
				"wait_duration_ms": stats.WaitDuration.Milliseconds(),
			}
		}
	}

	checks["sessions"] = map[string]interface{}{
		"status": "healthy",
		"active": rt.sessions.Len(),
	}

	status := "healthy"
	code := http.StatusOK
	if !allHealthy {
		status = "unhealthy"
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"status": status,
		"checks": checks,
	})
}
