// Package metrics provides Prometheus metrics for repository operations.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// operationDuration tracks repository operation duration in seconds.
	// Labels: collection, operation
	operationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "repository_operation_duration_seconds",
			Help:    "Repository operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"collection", "operation"},
	)

	// operationsTotal tracks total number of repository operations.
	// Labels: collection, operation, status
	operationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "repository_operations_total",
			Help: "Total number of repository operations",
		},
		[]string{"collection", "operation", "status"},
	)
)

// RecordOperation records one repository operation outcome. It updates the
// duration histogram and the operation counter with the provided labels; the
// status label is "ok" or "error" depending on err.
func RecordOperation(collection, operation string, err error, duration time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	operationDuration.WithLabelValues(collection, operation).Observe(duration.Seconds())
	operationsTotal.WithLabelValues(collection, operation, status).Inc()
}
