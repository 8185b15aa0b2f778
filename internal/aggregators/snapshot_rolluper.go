package aggregators

import (
	"fmt"
	"strconv"

	"log-viewer/internal/models"
)

const topK = 10

//go:generate mockgen -source=snapshot_rolluper.go -destination=./mocks/snapshot_rolluper_mock.go -package=mocks
type SnapshotRolluper interface {
	// Rollup mutates snapshot by accumulating a complete stream tally. Frequency tables are reduced
	// to their top entries here, so each stream is rolled up once per snapshot.
	Rollup(snapshot *models.StatisticsSnapshot, tally *StreamTally) error
}

type snapshotRolluper struct{}

func NewSnapshotRolluper() SnapshotRolluper {
	return &snapshotRolluper{}
}

func (r *snapshotRolluper) Rollup(snapshot *models.StatisticsSnapshot, tally *StreamTally) error {
	if snapshot == nil || tally == nil {
		return fmt.Errorf("snapshot and tally are required")
	}

	switch tally.Stream {
	case models.StreamAccess:
		r.rollupAccess(snapshot, tally)
	case models.StreamError:
		r.rollupError(snapshot, tally)
	default:
		return fmt.Errorf("tally of unknown stream %q", tally.Stream)
	}
	snapshot.FilesScanned += tally.FilesScanned
	snapshot.ErrorRate = errorRate(snapshot)

	return nil
}

func (r *snapshotRolluper) rollupAccess(snapshot *models.StatisticsSnapshot, tally *StreamTally) {
	snapshot.TotalRequests += tally.Requests
	snapshot.TodayRequests += tally.TodayRequests
	snapshot.TotalBytes += tally.Bytes
	for class, count := range tally.StatusClasses {
		snapshot.StatusCodes[class] += count
	}
	for hour, count := range tally.RequestsPerHour {
		snapshot.RequestsPerHour[hour] += count
	}

	snapshot.TopIPs = tally.IPs.TopK(topK)
	snapshot.TopURLs = tally.URLs.TopK(topK)
	snapshot.TopBrowsers = tally.Browsers.TopK(topK)
	snapshot.TopOS = tally.OS.TopK(topK)
}

func (r *snapshotRolluper) rollupError(snapshot *models.StatisticsSnapshot, tally *StreamTally) {
	snapshot.ErrorCount += tally.Errors
	snapshot.TodayErrors += tally.TodayErrors
	for level, count := range tally.ErrorLevels {
		snapshot.ErrorLevels[level] += count
	}
}

// errorRate is the share of 4xx and 5xx responses as a percentage with two decimals, "0" without requests.
func errorRate(snapshot *models.StatisticsSnapshot) string {
	if snapshot.TotalRequests == 0 {
		return "0"
	}
	failed := snapshot.StatusCodes[models.StatusClass4xx] + snapshot.StatusCodes[models.StatusClass5xx]
	return strconv.FormatFloat(float64(failed)/float64(snapshot.TotalRequests)*100, 'f', 2, 64)
}
