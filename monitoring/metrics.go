package monitoring

import "github.com/prometheus/client_golang/prometheus"

var (
	HttpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HttpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	ActiveConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "active_connections",
			Help: "Number of requests currently being served",
		},
	)

	LikeMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "like_mutations_total",
			Help: "Like and unlike requests, split by whether stored state changed",
		},
		[]string{"action", "changed"},
	)

	LikeRepairs = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "like_materialization_repairs_total",
			Help: "Posts whose likes_by list had drifted from the like records and was rewritten",
		},
	)
)

func Register(reg prometheus.Registerer) {
	reg.MustRegister(
		HttpRequestsTotal,
		HttpRequestDuration,
		ActiveConnections,
		LikeMutations,
		LikeRepairs,
	)
}
