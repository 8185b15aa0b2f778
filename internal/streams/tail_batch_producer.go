package streams

import (
	"context"

	"log-viewer/internal/events"
)

// TailBatchProducer publishes tail batches to a partitioned queue keyed by stream identity.
// Every batch of one stream lands on the same partition, so subscribers receive a stream's
// batches in the order the follower detected them.
//
//go:generate mockgen -source=tail_batch_producer.go -destination=./mocks/tail_batch_producer_mock.go -package=mocks
type TailBatchProducer interface {
	Produce(ctx context.Context, event *events.TailBatchEvent) error
}

type tailBatchProducer struct {
	queue *PartitionedQueue[events.TailBatchEvent]
}

func NewTailBatchProducer(queue *PartitionedQueue[events.TailBatchEvent]) TailBatchProducer {
	return &tailBatchProducer{
		queue: queue,
	}
}

func (producer *tailBatchProducer) Produce(ctx context.Context, event *events.TailBatchEvent) error {
	if err := producer.queue.Publish(ctx, string(event.Stream), *event); err != nil {
		return err
	}
	metricTailBatchProducedTotal.WithLabelValues(string(event.Stream)).Inc()
	return nil
}
