package aggregators

import (
	"log-viewer/internal/shared/metrics"
)

var (
	metricStatisticsDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "statistics_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{metrics.FieldErrorCode},
	)

	// metricSegmentsAggregatedTotal counts segments fully read by a statistics pass.
	metricSegmentsAggregatedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "segments_aggregated_total",
		},
		[]string{metrics.FieldStream},
	)

	// metricSegmentsUnavailableTotal counts segments skipped because they could not be opened or decompressed.
	// Their partial counts are discarded.
	metricSegmentsUnavailableTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "segments_unavailable_total",
		},
		[]string{metrics.FieldStream},
	)
)
