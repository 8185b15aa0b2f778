package parsers

import (
	"regexp"
	"strconv"
	"time"
)

const errorTimestampLayout = "2006/01/02 15:04:05"

// Case-sensitive English abbreviations; anything else is not a month.
var monthTable = map[string]time.Month{
	"Jan": time.January, "Feb": time.February, "Mar": time.March,
	"Apr": time.April, "May": time.May, "Jun": time.June,
	"Jul": time.July, "Aug": time.August, "Sep": time.September,
	"Oct": time.October, "Nov": time.November, "Dec": time.December,
}

// dd/Mon/yyyy:HH:MM:SS ±ZZZZ
var accessTimestampPattern = regexp.MustCompile(`^(\d{2})/(\w{3})/(\d{4}):(\d{2}):(\d{2}):(\d{2}) ([+-])(\d{2})(\d{2})$`)

// Normalizer converts the native timestamp of each stream into an absolute time.
// Timestamps without a zone are interpreted in loc.
type Normalizer struct {
	loc *time.Location
}

func NewNormalizer(loc *time.Location) *Normalizer {
	if loc == nil {
		loc = time.Local
	}
	return &Normalizer{loc: loc}
}

func (n *Normalizer) Location() *time.Location {
	return n.loc
}

// ParseAccessTimestamp parses "15/Nov/2025:12:00:00 +0000".
func (n *Normalizer) ParseAccessTimestamp(raw string) (time.Time, bool) {
	match := accessTimestampPattern.FindStringSubmatch(raw)
	if match == nil {
		return time.Time{}, false
	}

	month, ok := monthTable[match[2]]
	if !ok {
		return time.Time{}, false
	}

	day, _ := strconv.Atoi(match[1])
	year, _ := strconv.Atoi(match[3])
	hour, _ := strconv.Atoi(match[4])
	minute, _ := strconv.Atoi(match[5])
	second, _ := strconv.Atoi(match[6])
	zoneHours, _ := strconv.Atoi(match[8])
	zoneMinutes, _ := strconv.Atoi(match[9])

	if day < 1 || day > 31 || hour > 23 || minute > 59 || second > 60 || zoneMinutes > 59 {
		return time.Time{}, false
	}

	offset := zoneHours*3600 + zoneMinutes*60
	if match[7] == "-" {
		offset = -offset
	}

	t := time.Date(year, month, day, hour, minute, second, 0, time.FixedZone("", offset))
	if t.Day() != day {
		// 31/Feb and friends
		return time.Time{}, false
	}
	return t, true
}

// ParseErrorTimestamp parses "2025/11/15 12:00:00" in the normalizer's location.
func (n *Normalizer) ParseErrorTimestamp(raw string) (time.Time, bool) {
	t, err := time.ParseInLocation(errorTimestampLayout, raw, n.loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// IsSameLocalDay reports whether t falls on the same calendar date as now in the normalizer's location.
func (n *Normalizer) IsSameLocalDay(t, now time.Time) bool {
	ty, tm, td := t.In(n.loc).Date()
	ny, nm, nd := now.In(n.loc).Date()
	return ty == ny && tm == nm && td == nd
}

// LocalHour returns the hour of day of t in the normalizer's location.
func (n *Normalizer) LocalHour(t time.Time) int {
	return t.In(n.loc).Hour()
}
