// Package main implements the entry point for the demo API server, an
// in-memory users-and-orders CRUD service with an auto-generated OpenAPI
// document.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/example/demo-api/internal/config"
	"github.com/example/demo-api/internal/platform/logger"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration, sets up logging, and wires the
// application components together.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"pagination_default_limit", cfg.Pagination.DefaultLimit,
		"pagination_max_limit", cfg.Pagination.MaxLimit)

	return newApplication(cfg, appLogger)
}
