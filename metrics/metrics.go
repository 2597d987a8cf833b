package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal - total requests by endpoint and status
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hello_ops_requests_total",
			Help: "Total number of requests to the hello-ops service",
		},
		[]string{"endpoint", "status"},
	)

	// RequestDuration - request handling duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hello_ops_request_duration_seconds",
			Help:    "Request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)
)
