package models

import (
	"math"
	"time"
)

// FieldFilters holds the stream-specific field matchers. Empty values match everything.
type FieldFilters struct {
	IP     string // access: case-insensitive substring of the client address
	Status string // access: "4xx" class match, otherwise substring of the status text
	Level  string // error: case-insensitive substring of the level token
}

// DateBounds is an inclusive absolute time window; a nil side is open.
type DateBounds struct {
	Start *time.Time
	End   *time.Time
}

func (b DateBounds) IsZero() bool {
	return b.Start == nil && b.End == nil
}

// QuerySpec describes one page of a filtered, searched, newest-first view.
type QuerySpec struct {
	Page           int
	PageSize       int
	FullTextSearch string
	Filters        FieldFilters
	DateRange      DateBounds
}

// Clamped returns a copy with Page and PageSize raised to at least 1,
// and Page lowered so that Page*PageSize still fits in an int.
func (q QuerySpec) Clamped() QuerySpec {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = 1
	}
	if maxPage := math.MaxInt / q.PageSize; q.Page > maxPage {
		q.Page = maxPage
	}
	return q
}

// Offset is the number of matching records preceding the requested page.
func (q QuerySpec) Offset() int {
	return (q.Page - 1) * q.PageSize
}

// QueryResult is one page of matching records, newest first.
// When Approximate is set the scan stopped early and MatchingCount is a lower bound.
type QueryResult struct {
	MatchingCount int         `json:"matchingCount"`
	Page          int         `json:"page"`
	TotalPages    int         `json:"totalPages"`
	Approximate   bool        `json:"approximate"`
	Logs          []LogRecord `json:"logs"`
}

// NewQueryResult builds a result, deriving TotalPages from MatchingCount and pageSize.
func NewQueryResult(matchingCount, page, pageSize int, approximate bool, logs []LogRecord) *QueryResult {
	if logs == nil {
		logs = []LogRecord{}
	}
	totalPages := 0
	if pageSize > 0 {
		totalPages = (matchingCount + pageSize - 1) / pageSize
	}
	return &QueryResult{
		MatchingCount: matchingCount,
		Page:          page,
		TotalPages:    totalPages,
		Approximate:   approximate,
		Logs:          logs,
	}
}
