package routes

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	apihandlers "masterboxer.com/sns-api/handlers"
	"masterboxer.com/sns-api/monitoring"
	"masterboxer.com/sns-api/services"
)

// NewRouter builds the full route table with JSON 404/405 answers and
// request metrics on every matched route.
func NewRouter(db *sql.DB, svc services.Services, gatherer prometheus.Gatherer, timeout time.Duration) *mux.Router {
	router := mux.NewRouter()
	router.NotFoundHandler = apihandlers.NotFound()
	router.MethodNotAllowedHandler = apihandlers.MethodNotAllowed()
	router.Use(monitoring.NewPrometheusMiddleware)

	CreateSystemRoutes(db, gatherer, timeout, router)
	CreatePostRoutes(svc, timeout, router)
	return router
}

// Wrap adds CORS, panic recovery and access logging around h.
func Wrap(h http.Handler) http.Handler {
	logger := log.StandardLogger()

	h = handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(h)
	h = handlers.RecoveryHandler(
		handlers.RecoveryLogger(logger),
		handlers.PrintRecoveryStack(true),
	)(h)
	return handlers.LoggingHandler(logger.Writer(), h)
}
