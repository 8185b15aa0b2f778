package parsers

import (
	"fmt"
	"strings"
	"time"

	"log-viewer/internal/models"
)

const calendarDateLayout = "2006-01-02"

// NewDateBounds turns inclusive calendar dates into absolute bounds in loc: the start is
// floored to 00:00:00.000 and the end ceiled to 23:59:59.999. Empty dates leave that side open.
func NewDateBounds(startDate, endDate string, loc *time.Location) (models.DateBounds, error) {
	if loc == nil {
		loc = time.Local
	}

	var bounds models.DateBounds
	if s := strings.TrimSpace(startDate); s != "" {
		day, err := time.ParseInLocation(calendarDateLayout, s, loc)
		if err != nil {
			return models.DateBounds{}, fmt.Errorf("invalid start date %q: %w", startDate, err)
		}
		start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
		bounds.Start = &start
	}
	if e := strings.TrimSpace(endDate); e != "" {
		day, err := time.ParseInLocation(calendarDateLayout, e, loc)
		if err != nil {
			return models.DateBounds{}, fmt.Errorf("invalid end date %q: %w", endDate, err)
		}
		end := time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, int(999*time.Millisecond), loc)
		bounds.End = &end
	}

	return bounds, nil
}

// InRange reports whether t lies inside bounds. A timestamp that failed to parse (ok == false)
// is always excluded.
func InRange(t time.Time, ok bool, bounds models.DateBounds) bool {
	if !ok {
		return false
	}
	if bounds.Start != nil && t.Before(*bounds.Start) {
		return false
	}
	if bounds.End != nil && t.After(*bounds.End) {
		return false
	}
	return true
}
