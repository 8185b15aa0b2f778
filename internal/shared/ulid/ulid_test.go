package ulid

import (
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewULIDAt_EncodesTimestamp(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 11, 15, 12, 0, 1, 0, time.UTC)
	id := NewULIDAt(at)

	parsed, err := ulid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, ulid.Timestamp(at), parsed.Time())
}

func TestNewULIDAt_SortsByTime(t *testing.T) {
	t.Parallel()

	earlier := NewULIDAt(time.Date(2025, 11, 15, 12, 0, 0, 0, time.UTC))
	later := NewULIDAt(time.Date(2025, 11, 15, 12, 0, 5, 0, time.UTC))

	assert.Less(t, earlier, later)
	assert.Len(t, NewULID(), 26)
}
