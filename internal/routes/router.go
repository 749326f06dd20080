package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fuji-trip/tripmap/internal/api"
	"fuji-trip/tripmap/internal/constants"
	"fuji-trip/tripmap/internal/logging"
	"fuji-trip/tripmap/internal/middleware"
)

// RegisterRoutes builds the HTTP handler. redis may be nil when the
// in-memory cache is used.
func RegisterRoutes(deps *api.Dependencies, gatherer prometheus.Gatherer, redis api.Pinger, upSince time.Time) http.Handler {

	// initialize Chi router
	r := chi.NewRouter()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID", constants.SessionTokenHeader},
		ExposedHeaders:   []string{"X-Request-ID", constants.SessionTokenHeader},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	// health check and scrape endpoint stay outside the session layer
	r.Get("/healthCheck", api.HealthCheckHandler(deps.DB, redis, upSince))
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	handlers := api.NewHandlers(deps)

	r.Group(func(app chi.Router) {
		app.Use(middleware.SessionMiddleware(
			deps.Services.Sessions,
			deps.Services.Signer,
			deps.Metrics,
			deps.Config.IsProduction(),
		))
		app.Use(middleware.MetricsMiddleware(deps.Metrics))

		app.Get("/export/itinerary.md", handlers.DownloadMarkdown())

		RegisterAPIRoutes(app, handlers)
	})

	logging.Info("Router initialized", "allowed_origins", deps.Config.AllowedOrigins)
	return r
}
