package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	ItemOpsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "items_operations_total",
			Help: "Total successful item mutations",
		},
		[]string{"op"}, // create|update|delete
	)

	AuthFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_failures_total",
			Help: "Requests rejected by the auth gate",
		},
		[]string{"reason"}, // missing|invalid|unknown_user
	)

	WorkerQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "worker_queue_depth",
			Help: "Current worker queue depth",
		},
	)
)

// Handler serves the /metrics endpoint.
var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(ItemOpsTotal)
	prometheus.MustRegister(AuthFailures)
	prometheus.MustRegister(WorkerQueueDepth)
}
