package streams

import (
	"context"
	"testing"

	"log-viewer/internal/events"
	"log-viewer/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTailBatchProducer_Produce_PartitionsByStream(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueue[events.TailBatchEvent](4, 4)
	producer := NewTailBatchProducer(queue)

	first := &events.TailBatchEvent{BatchID: "b1", Stream: models.StreamAccess}
	second := &events.TailBatchEvent{BatchID: "b2", Stream: models.StreamAccess}
	require.NoError(t, producer.Produce(context.Background(), first))
	require.NoError(t, producer.Produce(context.Background(), second))

	partition := queue.Partition(partitionIndex(string(models.StreamAccess), queue.PartitionCount()))
	assert.Equal(t, "b1", (<-partition).BatchID)
	assert.Equal(t, "b2", (<-partition).BatchID)
}

func TestTailBatchProducer_Produce_CancelledContext(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueue[events.TailBatchEvent](1, 0)
	producer := NewTailBatchProducer(queue)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := producer.Produce(ctx, &events.TailBatchEvent{Stream: models.StreamError})
	assert.ErrorIs(t, err, context.Canceled)
}
