package routes

import (
	"dronekids/groundcontrol/internal/api"
	"dronekids/groundcontrol/internal/metrics"
	"dronekids/groundcontrol/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes registers all API v1 routes and handlers
// This keeps API route registration separate from the main router setup
func RegisterAPIRoutes(r chi.Router, metricsReg *metrics.MetricsRegistry, handlers *api.Handlers, jwtSecret []byte) {

	// API v1 routes
	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(middleware.MetricsMiddleware(metricsReg))
		v1.Use(middleware.AuthMiddleware(jwtSecret)) // global: all routes must be authenticated

		// Telemetry ingestion, the hot path
		v1.Post("/telemetry", handlers.IngestTelemetry())

		// Reference path management
		v1.Post("/path", handlers.SaveReferencePath())
		v1.Get("/missions/{missionID}/path", handlers.GetReferencePath())

		// Mission completion and debrief
		v1.Post("/missions/{missionID}/complete", handlers.CompleteMission())
		v1.Get("/missions/{missionID}/deviations", handlers.GetMissionDeviations())

		// Per-user history
		v1.Get("/results/me", handlers.GetMyResults())
	})
}
