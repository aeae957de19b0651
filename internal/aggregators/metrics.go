package aggregators

import (
	"log-report/internal/shared/metrics"
)

// metricLinesProcessedTotal counts input lines by parse outcome.
//
// The result label is "matched" for lines that followed the log line grammar and were
// counted, "unmatched" for lines kept aside as unmatched.
var (
	metricLinesProcessedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "lines_processed_total",
		},
		[]string{metrics.FieldResult},
	)
)
