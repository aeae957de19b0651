package reporters

import (
	"log-report/internal/shared/metrics"
)

var (
	metricReportRunsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "runs_total",
		},
		[]string{metrics.FieldErrorCode},
	)
	metricReportDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{metrics.FieldErrorCode},
	)
)
