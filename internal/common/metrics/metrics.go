// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CalcRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "points_calc_requests_total",
			Help: "Total number of points calculation requests",
		},
		[]string{"status"},
	)

	CalcRequestsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "points_calc_requests_failed_total",
			Help: "Total number of failed points calculation requests",
		},
		[]string{"error_code"},
	)

	CalcDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "points_calc_duration_seconds",
			Help: "Duration of points calculation requests in seconds",
		},
		[]string{"status"},
	)
)
