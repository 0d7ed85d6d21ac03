package server

import (
	"net/http"

	"github.com/Temutjin2k/fitness-tracker/docs"
	"github.com/Temutjin2k/fitness-tracker/internal/domain/types"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// setupRoutes - setups http routes
func (a *API) setupRoutes() {
	// System Health
	a.mux.HandleFunc("GET /health", a.routes.health.HealthCheck)

	setupSwaggerRoutes(a.mux)
	setupMetricsRoute(a.mux)
	setupWorkoutRoutes(a.mux, a)
}

// setupWorkoutRoutes setups routes for tracker service
func setupWorkoutRoutes(mux *http.ServeMux, a *API) {
	h := a.routes.workout

	mux.Handle("POST /workouts", a.m.RequireRoles(h.Create, types.RoleAthlete, types.RoleAdmin))          // Process a sensor package
	mux.Handle("GET /workouts", a.m.RequireRoles(h.List, types.RoleAthlete, types.RoleAdmin))             // Workout history
	mux.Handle("GET /workouts/{workout_id}", a.m.RequireRoles(h.Get, types.RoleAthlete, types.RoleAdmin)) // One workout
	mux.HandleFunc("GET /ws/workouts", h.HandleWS)                                                        // Live feed
}

// setupSwaggerRoutes configures Swagger UI endpoint
func setupSwaggerRoutes(mux *http.ServeMux) {
	swaggerURL := httpSwagger.InstanceName(docs.SwaggerInfotracker.InstanceName())
	mux.HandleFunc("/swagger/", httpSwagger.Handler(swaggerURL))
}

// setupMetricsRoute configures the Prometheus metrics endpoint
func setupMetricsRoute(mux *http.ServeMux) {
	mux.Handle("GET /metrics", promhttp.Handler())
}
