package routes

import (
	"context"
	"net/http"
	"os"
	"time"

	"dronekids/groundcontrol/internal/api"
	"dronekids/groundcontrol/internal/db"
	"dronekids/groundcontrol/internal/jobs"
	"dronekids/groundcontrol/internal/logging"
	"dronekids/groundcontrol/internal/metrics"
	"dronekids/groundcontrol/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func RegisterRoutes(upSince time.Time) http.Handler {

	// initialize Chi router
	r := chi.NewRouter()

	// Initialize metrics registry
	metricsReg := metrics.NewMetricsRegistry()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.RateLimitMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	logging.Info("Router initialized with request-ID and rate-limit middleware")

	// health check
	r.Get("/healthCheck", api.HealthCheckHandler(db.DB, upSince))

	// Initialize dependencies using DI pattern
	deps, err := api.InitDependencies(metricsReg)
	if err != nil {
		panic("Failed to initialize dependencies: " + err.Error())
	}

	// Initialize handlers with dependencies
	handlers := api.NewHandlers(deps)

	jwtSecret := []byte(os.Getenv("JWT_SECRET"))
	if len(jwtSecret) == 0 {
		logging.Warn("JWT_SECRET is not set; all authenticated routes will reject requests")
	}

	// Register API routes
	RegisterAPIRoutes(r, metricsReg, handlers, jwtSecret)

	// Start the sample retention job
	jobs.InitializeJobs(context.Background(), deps.Repo.Positions, metricsReg)

	return r
}
