package streams

import (
	"log-viewer/internal/shared/metrics"
)

var (
	metricTailBatchProducedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "tail_batch_published_total",
		},
		[]string{metrics.FieldStream},
	)

	metricTailBatchConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "tail_batch_consumed_total",
		},
		[]string{metrics.FieldStream, metrics.FieldErrorCode},
	)

	// metricSubscriberDroppedTotal counts subscribers disconnected because their buffer was full.
	metricSubscriberDroppedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "subscriber_dropped_total",
		},
		[]string{},
	)

	metricSubscribers = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "subscribers",
		},
	)
)
