package restapi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	apiRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "menudash_api_requests_total",
			Help: "Total number of backend API requests",
		},
		[]string{"method", "route", "code"},
	)

	apiRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "menudash_api_request_duration_seconds",
			Help:    "Histogram of backend API request durations",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	apiActiveRequests = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "menudash_api_active_requests",
			Help: "Number of in-flight backend API requests",
		},
		[]string{"method", "route"},
	)
)
