package routes

import (
	"database/sql"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"masterboxer.com/sns-api/handlers"
	"masterboxer.com/sns-api/openapi"
)

// CreateSystemRoutes registers health, API docs and the metrics endpoint.
func CreateSystemRoutes(db *sql.DB, gatherer prometheus.Gatherer, timeout time.Duration, router *mux.Router) *mux.Router {
	router.HandleFunc("/health", handlers.Health(db, timeout)).Methods("GET")
	router.HandleFunc("/v3/api-docs", openapi.JSONHandler()).Methods("GET")
	router.HandleFunc("/openapi.yaml", openapi.YAMLHandler()).Methods("GET")
	router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods("GET")

	return router
}
