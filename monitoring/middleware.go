package monitoring

import (
	"net/http"
	"strconv"

	"github.com/felixge/httpsnoop"
	"github.com/gorilla/mux"
)

type PrometheusMiddleware struct {
	handler http.Handler
}

func (m *PrometheusMiddleware) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	route := routeLabel(r)
	if route == "/metrics" {
		// Skip collecting metrics from metrics endpoint itself
		m.handler.ServeHTTP(w, r)
		return
	}

	ActiveConnections.Inc()
	defer ActiveConnections.Dec()

	metrics := httpsnoop.CaptureMetrics(m.handler, w, r)

	HttpRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(metrics.Code)).Inc()
	HttpRequestDuration.WithLabelValues(r.Method, route).Observe(metrics.Duration.Seconds())
}

// NewPrometheusMiddleware has the mux.MiddlewareFunc shape so it can be passed to router.Use.
func NewPrometheusMiddleware(handlerToWrap http.Handler) http.Handler {
	return &PrometheusMiddleware{handlerToWrap}
}

// routeLabel uses the matched path template so ids do not explode label cardinality.
func routeLabel(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}
