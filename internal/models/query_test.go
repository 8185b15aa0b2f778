package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuerySpec_Clamped(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		query          QuerySpec
		expectPage     int
		expectPageSize int
	}{
		{name: "valid unchanged", query: QuerySpec{Page: 3, PageSize: 50}, expectPage: 3, expectPageSize: 50},
		{name: "zero raised", query: QuerySpec{Page: 0, PageSize: 0}, expectPage: 1, expectPageSize: 1},
		{name: "negative raised", query: QuerySpec{Page: -4, PageSize: -1}, expectPage: 1, expectPageSize: 1},
		{name: "huge page capped", query: QuerySpec{Page: 1<<58 + 1, PageSize: 64}, expectPage: math.MaxInt / 64, expectPageSize: 64},
		{name: "max page size one", query: QuerySpec{Page: math.MaxInt, PageSize: 1}, expectPage: math.MaxInt, expectPageSize: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clamped := tt.query.Clamped()
			assert.Equal(t, tt.expectPage, clamped.Page)
			assert.Equal(t, tt.expectPageSize, clamped.PageSize)

			offset := clamped.Offset()
			assert.GreaterOrEqual(t, offset, 0)
			assert.GreaterOrEqual(t, offset+clamped.PageSize, offset)
		})
	}
}
