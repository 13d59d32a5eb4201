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

	httpapi "github.com/oakleaftoys/storefront/internal/storefront/http"
	"github.com/oakleaftoys/storefront/internal/storefront/service"
	sig "github.com/oakleaftoys/storefront/internal/storefront/signal"
	"github.com/oakleaftoys/storefront/internal/storefront/store"
	"github.com/oakleaftoys/storefront/internal/storefront/store/drivers/sqlite"
	"github.com/oakleaftoys/storefront/pkg/shopapi"
	"github.com/oakleaftoys/storefront/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the storefront gateway with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db  store.Store
	api *shopapi.Client
	hub *sig.Hub

	// Services
	sessionService  *service.SessionService
	cartService     *service.CartService
	wishlistService *service.WishlistService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		hub: sig.NewHub(),
		logger: slogx.New(slogx.Config{
			Service: "storefront-gateway",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("storefront gateway starting",
		"port", app.cfg.Port,
		"api", app.cfg.APIBaseURL,
		"version", BuildVersion,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case s := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", s)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down storefront gateway...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("storefront gateway stopped")
	return nil
}

// initDatabase initializes the local database and applies migrations
func (app *Application) initDatabase() error {
	db, err := sqlite.NewStore(app.cfg.DatabaseFile)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initServices initializes the commerce client and business logic services
func (app *Application) initServices() {
	app.api = shopapi.NewClient(app.cfg.APIBaseURL, service.NewTokenSource(app.db.Tokens()))

	app.sessionService = &service.SessionService{
		Store: app.db,
		API:   app.api,
		Hub:   app.hub,
	}
	app.cartService = &service.CartService{
		Store:   app.db,
		API:     app.api,
		Session: app.sessionService,
		Hub:     app.hub,
	}
	app.wishlistService = &service.WishlistService{
		Store:   app.db,
		API:     app.api,
		Session: app.sessionService,
		Hub:     app.hub,
	}

	// The session service drives the login-time merges
	app.sessionService.Cart = app.cartService
	app.sessionService.Wishlist = app.wishlistService
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.hub, app.logger)

	router.SessionService = app.sessionService
	router.CartService = app.cartService
	router.WishlistService = app.wishlistService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf("localhost:%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
