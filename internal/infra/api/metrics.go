package api

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Backend request metrics. Labels are the logical endpoint (the path
// template, not the concrete URL), the method and the response status.
var (
	backendRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ulaz_backend_requests_total",
			Help: "Number of requests issued to the ticketing backend.",
		},
		[]string{"endpoint", "method", "status"},
	)

	backendRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ulaz_backend_request_duration_seconds",
			Help:    "Latency of requests to the ticketing backend.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method"},
	)
)

func observeRequest(endpoint, method string, status int, seconds float64) {
	backendRequestsTotal.WithLabelValues(endpoint, method, strconv.Itoa(status)).Inc()
	backendRequestDuration.WithLabelValues(endpoint, method).Observe(seconds)
}
