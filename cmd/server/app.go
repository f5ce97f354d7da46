package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/example/demo-api/internal/api"
	"github.com/example/demo-api/internal/api/shared"
	"github.com/example/demo-api/internal/config"
	"github.com/example/demo-api/internal/docs"
	"github.com/example/demo-api/internal/store"
	"github.com/example/demo-api/internal/store/memory"
	"github.com/swaggest/openapi-go/openapi3"
)

const (
	apiTitle   = "Demo API"
	apiVersion = "1.0.0"
)

// application holds all the shared application dependencies to simplify
// management and wiring.
type application struct {
	config *config.Config
	logger *slog.Logger

	// Stores (using interfaces for proper abstraction). Both are
	// process-wide singletons, initialized empty at startup.
	userStore  store.UserStore
	orderStore store.OrderStore

	// Handlers
	userHandler  *api.UserHandler
	orderHandler *api.OrderHandler

	// OpenAPI document, assembled once at startup.
	openapi *openapi3.Spec
}

// newApplication creates a new application instance with all dependencies
// initialized.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	app.userStore = memory.NewUserStore()
	app.orderStore = memory.NewOrderStore()

	limits := shared.PaginationLimits{
		DefaultLimit: cfg.Pagination.DefaultLimit,
		MaxLimit:     cfg.Pagination.MaxLimit,
	}
	app.userHandler = api.NewUserHandler(app.userStore, limits, logger)
	app.orderHandler = api.NewOrderHandler(app.orderStore, app.userStore, limits, logger)

	spec, err := docs.Spec(apiTitle, apiVersion)
	if err != nil {
		return nil, fmt.Errorf("failed to build OpenAPI document: %w", err)
	}
	app.openapi = spec

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
