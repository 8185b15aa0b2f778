package scanners

import (
	"strconv"
	"strings"

	"log-viewer/internal/models"
	"log-viewer/internal/parsers"
)

const statusClassSuffix = "xx"

// recordMatcher applies the filter pipeline to one raw line, cheapest reject first:
// full-text search, grammar, field filters, then the date range.
type recordMatcher struct {
	stream     models.LogStream
	search     string
	ip         string
	status     string
	level      string
	dateRange  models.DateBounds
	normalizer *parsers.Normalizer
}

func newRecordMatcher(stream models.LogStream, query models.QuerySpec, normalizer *parsers.Normalizer) *recordMatcher {
	return &recordMatcher{
		stream:     stream,
		search:     strings.ToLower(query.FullTextSearch),
		ip:         strings.ToLower(strings.TrimSpace(query.Filters.IP)),
		status:     strings.ToLower(strings.TrimSpace(query.Filters.Status)),
		level:      strings.ToLower(strings.TrimSpace(query.Filters.Level)),
		dateRange:  query.DateRange,
		normalizer: normalizer,
	}
}

// match returns the parsed record when line survives every filter.
func (m *recordMatcher) match(line string) (models.LogRecord, bool) {
	if m.search != "" && !strings.Contains(strings.ToLower(line), m.search) {
		return nil, false
	}

	switch m.stream {
	case models.StreamAccess:
		return m.matchAccess(line)
	case models.StreamError:
		return m.matchError(line)
	default:
		return nil, false
	}
}

func (m *recordMatcher) matchAccess(line string) (models.LogRecord, bool) {
	record, ok := parsers.ParseAccess(line)
	if !ok {
		return nil, false
	}
	if m.ip != "" && !strings.Contains(strings.ToLower(record.ClientAddress), m.ip) {
		return nil, false
	}
	if m.status != "" && !matchStatus(record.StatusCode, m.status) {
		return nil, false
	}
	if !m.dateRange.IsZero() {
		t, ok := m.normalizer.ParseAccessTimestamp(record.TimestampRaw)
		if !parsers.InRange(t, ok, m.dateRange) {
			return nil, false
		}
	}
	return &models.AccessLogView{AccessRecord: *record}, true
}

func (m *recordMatcher) matchError(line string) (models.LogRecord, bool) {
	record, ok := parsers.ParseError(line)
	if !ok {
		return nil, false
	}
	if m.level != "" && !strings.Contains(strings.ToLower(string(record.Level)), m.level) {
		return nil, false
	}
	if !m.dateRange.IsZero() {
		t, ok := m.normalizer.ParseErrorTimestamp(record.TimestampRaw)
		if !parsers.InRange(t, ok, m.dateRange) {
			return nil, false
		}
	}
	return &models.ErrorLogView{ErrorRecord: *record}, true
}

// matchStatus treats any filter ending in "xx" ("4xx", "40xx") as a class match on the
// leading character and anything else as a substring of the status text.
// filter must already be lower-cased.
func matchStatus(status int, filter string) bool {
	text := strconv.Itoa(status)
	if strings.HasSuffix(filter, statusClassSuffix) && len(filter) > len(statusClassSuffix) {
		return text[:1] == filter[:1]
	}
	return strings.Contains(text, filter)
}
