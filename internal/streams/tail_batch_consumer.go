package streams

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"log-viewer/internal/events"
	"log-viewer/internal/shared/loggers"
	"log-viewer/internal/shared/metrics"
	"log-viewer/internal/shared/svcerrors"
)

const codeBroadcastFailed = "STR_9000"

//go:generate mockgen -source=tail_batch_consumer.go -destination=./mocks/tail_batch_consumer_mock.go -package=mocks
type TailBatchConsumer interface {
	Start(ctx context.Context)
	Stop()
}

type tailBatchConsumer struct {
	queue       *PartitionedQueue[events.TailBatchEvent]
	broadcaster Broadcaster

	wg sync.WaitGroup

	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewTailBatchConsumer(queue *PartitionedQueue[events.TailBatchEvent], broadcaster Broadcaster, logger loggers.Logger) TailBatchConsumer {
	return &tailBatchConsumer{
		queue:       queue,
		broadcaster: broadcaster,
		stopCh:      make(chan struct{}),
		logger:      logger,
	}
}

// Start spawns 1 worker goroutine per partition.
// Each partition carries the batches of the streams hashed onto it, in production order.
func (consumer *tailBatchConsumer) Start(ctx context.Context) {
	for partitionIndex := 0; partitionIndex < consumer.queue.PartitionCount(); partitionIndex++ {
		partitionIndex := partitionIndex
		ch := consumer.queue.Partition(partitionIndex)
		consumer.wg.Add(1)
		go func() {
			defer consumer.wg.Done()

			consumer.runPartitionWorker(ctx, partitionIndex, ch)
		}()
	}
}

// Stop waits for workers to stop (best called during app shutdown).
func (consumer *tailBatchConsumer) Stop() {
	consumer.stopOnce.Do(func() { close(consumer.stopCh) })
	consumer.wg.Wait()
}

func (consumer *tailBatchConsumer) runPartitionWorker(ctx context.Context, partitionIndex int, ch <-chan events.TailBatchEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-consumer.stopCh:
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			consumer.consume(ctx, partitionIndex, &event)
		}
	}
}

func (consumer *tailBatchConsumer) consume(ctx context.Context, partitionIndex int, event *events.TailBatchEvent) {
	stream := string(event.Stream)

	defer func() {
		if r := recover(); r != nil {
			consumer.logger.Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msg("consumer panic recovered")

			var panicErr error
			if err, ok := r.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", r)
			}

			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			metricTailBatchConsumedTotal.WithLabelValues(stream, svcErr.Code).Inc()
		}
	}()

	logger := consumer.logger.With().
		Str(loggers.FieldPartitionId, fmt.Sprintf("%d", partitionIndex)).
		Str(loggers.FieldBatchID, event.BatchID).
		Str(loggers.FieldStream, stream).
		Logger()
	eventCtx := logger.WithContext(ctx)

	if err := consumer.broadcaster.Broadcast(eventCtx, event); err != nil {
		logger.Error().Err(err).Msg("failed to broadcast tail batch")
		metricTailBatchConsumedTotal.WithLabelValues(stream, codeBroadcastFailed).Inc()
		return
	}
	metricTailBatchConsumedTotal.WithLabelValues(stream, metrics.ValueNoError).Inc()
}
