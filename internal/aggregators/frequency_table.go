package aggregators

import (
	"sort"

	"log-viewer/internal/models"
)

// FrequencyTable counts keys and remembers the order in which each key was first seen,
// which is the tie-breaker of TopK.
type FrequencyTable struct {
	index   map[string]int
	entries []models.KeyCount
}

func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{index: make(map[string]int)}
}

func (f *FrequencyTable) Add(key string) {
	f.AddN(key, 1)
}

func (f *FrequencyTable) AddN(key string, n int64) {
	if i, ok := f.index[key]; ok {
		f.entries[i].Count += n
		return
	}
	f.index[key] = len(f.entries)
	f.entries = append(f.entries, models.KeyCount{Key: key, Count: n})
}

// Merge adds every count of other. Keys new to f are appended in other's first-seen order.
func (f *FrequencyTable) Merge(other *FrequencyTable) {
	for _, entry := range other.entries {
		f.AddN(entry.Key, entry.Count)
	}
}

func (f *FrequencyTable) Len() int {
	return len(f.entries)
}

func (f *FrequencyTable) Count(key string) int64 {
	if i, ok := f.index[key]; ok {
		return f.entries[i].Count
	}
	return 0
}

// TopK returns at most k entries by descending count; equal counts keep first-seen order.
func (f *FrequencyTable) TopK(k int) []models.KeyCount {
	top := make([]models.KeyCount, len(f.entries))
	copy(top, f.entries)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Count > top[j].Count
	})
	if k >= 0 && len(top) > k {
		top = top[:k]
	}
	return top
}
