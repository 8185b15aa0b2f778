package scanners

import (
	"log-viewer/internal/shared/metrics"
)

var (
	metricSegmentsScannedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubScan,
			Name:      "segments_scanned_total",
		},
		[]string{metrics.FieldStream},
	)

	metricSegmentsUnavailableTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubScan,
			Name:      "segments_unavailable_total",
		},
		[]string{metrics.FieldStream},
	)

	metricEarlyExitTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubScan,
			Name:      "early_exit_total",
		},
		[]string{metrics.FieldStream},
	)

	metricScanDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubScan,
			Name:      "duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{metrics.FieldStream, metrics.FieldErrorCode},
	)
)
