package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/straye-as/storefront/docs"
	"github.com/straye-as/storefront/internal/config"
	"github.com/straye-as/storefront/internal/database"
	"github.com/straye-as/storefront/internal/http/handler"
	"github.com/straye-as/storefront/internal/http/middleware"
	"github.com/straye-as/storefront/internal/http/router"
	"github.com/straye-as/storefront/internal/jobs"
	"github.com/straye-as/storefront/internal/logger"
	"github.com/straye-as/storefront/internal/service"
	"github.com/straye-as/storefront/internal/session"
	"github.com/straye-as/storefront/internal/storage"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// @title Storefront Cart API
// @version 1.0
// @description Session cart and WhatsApp checkout handoff for the storefront

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Load basic configuration first (for logging setup)
	basicCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&basicCfg.Logging, &basicCfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", basicCfg.App.Name),
		zap.String("env", basicCfg.App.Environment),
		zap.Int("port", basicCfg.App.Port),
	)

	if basicCfg.App.Environment == "development" || basicCfg.App.Environment == "local" {
		docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", basicCfg.App.Port)
	} else {
		docs.SwaggerInfo.Host = ""
	}

	// In staging/production secrets may come from Azure Key Vault
	cfg, err := config.LoadWithSecrets(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to load secrets: %w", err)
	}

	if cfg.Checkout.WhatsAppNumber == "" {
		log.Warn("checkout.whatsAppNumber is not set, checkout links will open the WhatsApp contact picker")
	}

	// The database is only opened when carts are stored in it
	var db *gorm.DB
	if cfg.Storage.Mode == storage.ModeDatabase {
		db, err = database.NewDatabase(&cfg.Database, log)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer func() { _ = database.Close(db) }()

		if cfg.Database.Driver == "sqlite" {
			if err := database.AutoMigrate(db); err != nil {
				return fmt.Errorf("failed to migrate database: %w", err)
			}
		}
	}

	cartStorage, err := storage.NewStorage(&cfg.Storage, db, log)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	log.Info("Storage initialized", zap.String("mode", cfg.Storage.Mode))

	sessions := session.NewManager(cartStorage, &cfg.Session, log)

	// Initialize services
	cartService := service.NewCartService(sessions, log)
	checkoutService := service.NewCheckoutService(sessions, &cfg.Checkout, log)

	// Initialize middleware
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	// Initialize handlers
	cartHandler := handler.NewCartHandler(cartService, log)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService, log)

	rt := router.NewRouter(
		cfg,
		log,
		db,
		cartStorage,
		sessions,
		rateLimiter,
		cartHandler,
		checkoutHandler,
	)

	// Background jobs
	scheduler := jobs.NewScheduler(log)
	if err := jobs.RegisterSessionEvictionJob(scheduler, sessions, log, cfg.Session.EvictionCron); err != nil {
		return fmt.Errorf("failed to register session eviction job: %w", err)
	}
	if purger, ok := cartStorage.(jobs.RecordPurger); ok && cfg.Session.RetentionDays > 0 {
		if err := jobs.RegisterCartPurgeJob(
			scheduler,
			purger,
			cfg.Session.RetentionDuration(),
			log,
			cfg.Session.PurgeCron,
			cfg.Server.ShutdownTimeoutDuration(),
		); err != nil {
			return fmt.Errorf("failed to register cart purge job: %w", err)
		}
	} else {
		log.Info("Abandoned cart purge disabled",
			zap.String("storage_mode", cfg.Storage.Mode),
			zap.Int("retention_days", cfg.Session.RetentionDays),
		)
	}
	scheduler.Start()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		<-scheduler.Stop().Done()
		log.Info("Scheduler stopped")

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeoutDuration())
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		// Every mutation is already persisted; this only releases the in-memory stores
		sessions.Close()

		log.Info("Server stopped gracefully")
	}

	return nil
}
