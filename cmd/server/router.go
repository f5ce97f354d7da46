package main

import (
	"net/http"

	"github.com/example/demo-api/internal/api/shared"
	"github.com/example/demo-api/internal/docs"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	apiMiddleware "github.com/example/demo-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)

	// Users resource
	r.Route("/users", func(r chi.Router) {
		r.Get("/", app.userHandler.List)
		r.Post("/", app.userHandler.Create)

		r.Route("/{userID}", func(r chi.Router) {
			// Get-or-404 runs before every item handler.
			r.Use(app.userHandler.Context)
			r.Get("/", app.userHandler.Get)
			r.Put("/", app.userHandler.Replace)
			r.Patch("/", app.userHandler.Update)
			r.Delete("/", app.userHandler.Delete)
		})
	})

	// Orders resource
	r.Route("/orders", func(r chi.Router) {
		r.Get("/", app.orderHandler.List)
		r.Post("/", app.orderHandler.Create)
		r.Get("/user/{userID}", app.orderHandler.ListByUser)

		r.Route("/{orderID}", func(r chi.Router) {
			r.Use(app.orderHandler.Context)
			r.Get("/", app.orderHandler.Get)
			r.Put("/", app.orderHandler.Replace)
			r.Patch("/", app.orderHandler.Update)
			r.Delete("/", app.orderHandler.Delete)
		})
	})

	// OpenAPI document derived from the request/response schemas
	r.Get("/openapi.json", docs.Handler(app.openapi, app.logger))

	// Root index
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{
			"message": "Demo API is running",
			"docs":    "/openapi.json",
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
