package tailers

import (
	"log-viewer/internal/shared/metrics"
)

var (
	metricGrowthEventsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubTail,
			Name:      "growth_events_total",
		},
		[]string{metrics.FieldStream},
	)

	// metricRotationsTotal counts shrinks of a live file, each treated as a rotation or truncation.
	metricRotationsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubTail,
			Name:      "rotations_total",
		},
		[]string{metrics.FieldStream},
	)

	metricRecordsEmittedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubTail,
			Name:      "records_emitted_total",
		},
		[]string{metrics.FieldStream},
	)

	metricEventErrorsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubTail,
			Name:      "event_errors_total",
		},
		[]string{metrics.FieldStream},
	)
)
