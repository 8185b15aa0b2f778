package parsers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizer_ParseAccessTimestamp(t *testing.T) {
	t.Parallel()

	normalizer := NewNormalizer(time.UTC)

	tests := []struct {
		name     string
		raw      string
		expected time.Time
		ok       bool
	}{
		{
			name:     "utc offset",
			raw:      "15/Nov/2025:12:00:00 +0000",
			expected: time.Date(2025, 11, 15, 12, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "positive offset",
			raw:      "15/Nov/2025:12:00:00 +0530",
			expected: time.Date(2025, 11, 15, 6, 30, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "negative offset",
			raw:      "01/Jan/2025:00:15:00 -0800",
			expected: time.Date(2025, 1, 1, 8, 15, 0, 0, time.UTC),
			ok:       true,
		},
		{name: "lower-case month", raw: "15/nov/2025:12:00:00 +0000"},
		{name: "unknown month", raw: "15/Foo/2025:12:00:00 +0000"},
		{name: "full month name", raw: "15/November/2025:12:00:00 +0000"},
		{name: "missing zone", raw: "15/Nov/2025:12:00:00"},
		{name: "impossible date", raw: "31/Feb/2025:12:00:00 +0000"},
		{name: "empty", raw: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := normalizer.ParseAccessTimestamp(tt.raw)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, tt.expected.Equal(got), "expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestNormalizer_ParseErrorTimestamp_UsesLocation(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+7", 7*3600)
	normalizer := NewNormalizer(loc)

	got, ok := normalizer.ParseErrorTimestamp("2025/11/15 12:00:00")
	require.True(t, ok)
	assert.True(t, time.Date(2025, 11, 15, 5, 0, 0, 0, time.UTC).Equal(got))

	_, ok = normalizer.ParseErrorTimestamp("2025/13/15 12:00:00")
	assert.False(t, ok)
}

func TestNormalizer_IsSameLocalDay(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+7", 7*3600)
	normalizer := NewNormalizer(loc)
	now := time.Date(2025, 11, 15, 10, 0, 0, 0, loc)

	assert.True(t, normalizer.IsSameLocalDay(time.Date(2025, 11, 15, 0, 0, 0, 0, loc), now))
	// 2025-11-14 17:30 UTC is 2025-11-15 00:30 local
	assert.True(t, normalizer.IsSameLocalDay(time.Date(2025, 11, 14, 17, 30, 0, 0, time.UTC), now))
	// 23h earlier but on the previous calendar day
	assert.False(t, normalizer.IsSameLocalDay(time.Date(2025, 11, 14, 23, 59, 59, 0, loc), now))
	assert.Equal(t, 0, normalizer.LocalHour(time.Date(2025, 11, 14, 17, 30, 0, 0, time.UTC)))
}
