package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/vrata-api/internal/config"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET    /health                     liveness/readiness probe
//	GET    /api/v1/vrata/next          next vrata for one location
//	GET    /api/v1/vrata/batch         next vrata for every registered location
//	GET    /api/v1/locations           list registered locations
//	GET    /api/v1/locations/{name}    look up one location
//	POST   /api/v1/locations           register or update a location (API key)
//	DELETE /api/v1/locations/{name}    remove a location (API key)
func SetupRoutes(handlers *Handlers, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(RecoveryMiddleware(logger))
	r.Use(RequestIDMiddleware())
	r.Use(LoggingMiddleware(logger))
	r.Use(CORSMiddleware())

	authWrap := AuthMiddleware(cfg, logger)

	r.Get("/health", handlers.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/vrata/next", handlers.GetNextVrata)
		r.Get("/vrata/batch", handlers.GetBatchVrata)

		r.Get("/locations", handlers.ListLocations)
		r.Get("/locations/{name}", handlers.GetLocation)

		r.With(authWrap).Post("/locations", handlers.PutLocation)
		r.With(authWrap).Delete("/locations/{name}", handlers.DeleteLocation)
	})

	return r
}
