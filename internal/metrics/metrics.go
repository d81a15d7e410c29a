package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "calc_http_requests_total",
		Help: "Total HTTP requests by route, method and status",
	}, []string{"path", "method", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "calc_http_request_duration_seconds",
		Help:    "HTTP request latency by route and method",
		Buckets: prometheus.DefBuckets,
	}, []string{"path", "method"})

	UserRecords = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "calc_user_records",
		Help: "Number of records in the in-memory user list",
	})

	Calculations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "calc_calculations_total",
		Help: "Calculator invocations by calculator and outcome",
	}, []string{"calculator", "outcome"})
)

// SetUserRecords is the store observer that keeps UserRecords current.
func SetUserRecords(count int) {
	UserRecords.Set(float64(count))
}
