package api

import (
	"itinerary-planner-service/internal/api/handlers"
	"itinerary-planner-service/internal/ports"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(catalog ports.CatalogSource, provider ports.DistanceProvider, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(logger.With("component", "http")))
	r.Use(middleware.Recoverer)

	pkgHandler := &handlers.PackageHandler{Catalog: catalog}
	planHandler := &handlers.PlanHandler{
		Catalog:  catalog,
		Provider: provider,
	}

	r.Get("/health", handlers.Health)
	r.Get("/packages", pkgHandler.List)
	r.Get("/packages/{id}", pkgHandler.Get)
	r.Post("/plans", planHandler.Plan)

	return r
}
