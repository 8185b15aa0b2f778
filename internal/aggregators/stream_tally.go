package aggregators

import (
	"log-viewer/internal/models"
)

// StreamTally accumulates the raw counters of one stream before they are rolled up into a snapshot.
type StreamTally struct {
	Stream       models.LogStream
	FilesScanned int

	Requests        int64
	TodayRequests   int64
	StatusClasses   map[string]int64
	RequestsPerHour [24]int64
	Bytes           int64
	IPs             *FrequencyTable
	URLs            *FrequencyTable
	Browsers        *FrequencyTable
	OS              *FrequencyTable

	Errors      int64
	TodayErrors int64
	ErrorLevels map[models.ErrorLevel]int64
}

func NewStreamTally(stream models.LogStream) *StreamTally {
	return &StreamTally{
		Stream:        stream,
		StatusClasses: make(map[string]int64, 4),
		IPs:           NewFrequencyTable(),
		URLs:          NewFrequencyTable(),
		Browsers:      NewFrequencyTable(),
		OS:            NewFrequencyTable(),
		ErrorLevels:   make(map[models.ErrorLevel]int64, len(models.KnownErrorLevels)),
	}
}

// Merge folds other into t. Both must belong to the same stream.
func (t *StreamTally) Merge(other *StreamTally) {
	t.FilesScanned += other.FilesScanned

	t.Requests += other.Requests
	t.TodayRequests += other.TodayRequests
	for class, count := range other.StatusClasses {
		t.StatusClasses[class] += count
	}
	for hour, count := range other.RequestsPerHour {
		t.RequestsPerHour[hour] += count
	}
	t.Bytes += other.Bytes
	t.IPs.Merge(other.IPs)
	t.URLs.Merge(other.URLs)
	t.Browsers.Merge(other.Browsers)
	t.OS.Merge(other.OS)

	t.Errors += other.Errors
	t.TodayErrors += other.TodayErrors
	for level, count := range other.ErrorLevels {
		t.ErrorLevels[level] += count
	}
}

// statusClass buckets a status code into [200,300), [300,400), [400,500) or [500,∞).
func statusClass(status int) (string, bool) {
	switch {
	case status >= 500:
		return models.StatusClass5xx, true
	case status >= 400:
		return models.StatusClass4xx, true
	case status >= 300:
		return models.StatusClass3xx, true
	case status >= 200:
		return models.StatusClass2xx, true
	default:
		return "", false
	}
}
