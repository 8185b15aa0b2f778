package models

import "math"

// RankUnordered is the ordinal rank of a segment whose name carries no rotation index.
const RankUnordered = math.MaxInt

// SegmentDescriptor is one physical file of a log stream. OrdinalRank 0 is the live file;
// larger ranks are older rotations.
type SegmentDescriptor struct {
	Stream       LogStream `json:"stream"`
	Key          string    `json:"key"`
	Path         string    `json:"path"`
	OrdinalRank  int       `json:"ordinalRank"`
	IsCompressed bool      `json:"isCompressed"`
	Size         int64     `json:"size"`
}

func (s SegmentDescriptor) IsLive() bool {
	return s.OrdinalRank == 0
}
