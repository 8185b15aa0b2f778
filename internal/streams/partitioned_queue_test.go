package streams

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionedQueue_SameKeySamePartitionInOrder(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueue[int](4, 8)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		require.NoError(t, queue.Publish(ctx, "access", i))
	}

	partition := queue.Partition(partitionIndex("access", queue.PartitionCount()))
	for i := 0; i < 5; i++ {
		assert.Equal(t, i, <-partition)
	}
}

func TestPartitionedQueue_Defaults(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueue[int](0, -1)
	assert.Equal(t, defaultNumPartitions, queue.PartitionCount())
	assert.Equal(t, defaultBuffer, cap(queue.partitions[0]))
}

func TestPartitionedQueue_PublishHonoursContext(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueue[int](1, 0)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := queue.Publish(ctx, "error", 1)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPartitionIndex_Stable(t *testing.T) {
	t.Parallel()

	for _, key := range []string{"access", "error", ""} {
		first := partitionIndex(key, 7)
		assert.Equal(t, first, partitionIndex(key, 7))
		assert.GreaterOrEqual(t, first, 0)
		assert.Less(t, first, 7)
	}
}
