package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmikalova/login-gateway/internal/gateway/domain"
	httpapi "github.com/dmikalova/login-gateway/internal/gateway/http"
	"github.com/dmikalova/login-gateway/internal/gateway/service"
	"github.com/dmikalova/login-gateway/internal/gateway/store"
	"github.com/dmikalova/login-gateway/internal/gateway/store/drivers/postgres"
	"github.com/dmikalova/login-gateway/pkg/jwtx"
	"github.com/dmikalova/login-gateway/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the login gateway with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	families domain.FamilySet

	// Core dependencies
	db   store.Store // nil when DATABASE_URL is unset
	keys *jwtx.RemoteKeySet

	// Services
	trustService *service.TrustService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "login-gateway",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	app.families = domain.NewFamilySet(cfg.SupportedDomains)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.keys = jwtx.NewRemoteKeySet(cfg.SupabaseURL, jwtx.WithKeyTTL(cfg.KeyCacheTTL))
	app.trustService = &service.TrustService{
		Keys:   app.keys,
		Leeway: service.DefaultLeeway,
	}

	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("login gateway starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"domains", app.families.Families(),
	)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down login gateway...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database", "error", err)
			return err
		}
	}

	app.logger.Info("login gateway stopped")
	return nil
}

// initDatabase initializes the analytics database and applies migrations.
// Analytics is best-effort: with no DATABASE_URL the gateway runs without it.
func (app *Application) initDatabase() error {
	if app.cfg.DatabaseURL == "" {
		app.logger.Warn("DATABASE_URL not set, login analytics disabled")
		return nil
	}

	db, err := postgres.NewStore(context.Background(), app.cfg.DatabaseURL, app.cfg.DatabaseSchema)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "schema", app.cfg.DatabaseSchema)
	return nil
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(app.families, BuildVersion, app.logger)

	router.Trust = app.trustService
	router.Store = app.db
	router.GoogleClientID = app.cfg.GoogleClientID
	router.ProviderURL = app.cfg.SupabaseURL
	router.PublishableKey = app.cfg.PublishableKey
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
