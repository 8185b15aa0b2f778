package aggregators

import (
	"context"
	"time"

	"log-viewer/internal/models"
	"log-viewer/internal/parsers"
	"log-viewer/internal/segments"
	"log-viewer/internal/shared/loggers"
	"log-viewer/internal/shared/metrics"
	"log-viewer/internal/shared/svcerrors"
	"log-viewer/internal/useragents"

	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=statistics_aggregator.go -destination=./mocks/statistics_aggregator_mock.go -package=mocks
type StatisticsAggregator interface {
	// Aggregate reads every segment of both streams and summarises them.
	Aggregate(ctx context.Context) (*models.StatisticsSnapshot, error)
}

type Option func(*statisticsAggregator)

// WithClock overrides the source of "now" used to decide which records happened today.
func WithClock(clock func() time.Time) Option {
	return func(a *statisticsAggregator) {
		a.clock = clock
	}
}

type statisticsAggregator struct {
	segmentLister segments.SegmentLister
	normalizer    *parsers.Normalizer
	classifier    useragents.Classifier
	rolluper      SnapshotRolluper
	clock         func() time.Time
}

func NewStatisticsAggregator(segmentLister segments.SegmentLister, normalizer *parsers.Normalizer, classifier useragents.Classifier, rolluper SnapshotRolluper, opts ...Option) StatisticsAggregator {
	a := &statisticsAggregator{
		segmentLister: segmentLister,
		normalizer:    normalizer,
		classifier:    classifier,
		rolluper:      rolluper,
		clock:         time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *statisticsAggregator) Aggregate(ctx context.Context) (*models.StatisticsSnapshot, error) {
	startTime := time.Now()
	snapshot, err := a.aggregate(ctx)

	errorCode := metrics.ValueNoError
	if svcErr, ok := svcerrors.As(err); ok {
		errorCode = svcErr.Code
	}
	metricStatisticsDuration.WithLabelValues(errorCode).Observe(time.Since(startTime).Seconds())

	return snapshot, err
}

func (a *statisticsAggregator) aggregate(ctx context.Context) (*models.StatisticsSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, errInternalStatisticsAborted(err)
	}
	now := a.clock()
	tallies := make([]*StreamTally, len(models.Streams))

	g, gctx := errgroup.WithContext(ctx)
	for i, stream := range models.Streams {
		i, stream := i, stream
		g.Go(func() error {
			tally, err := a.tallyStream(gctx, stream, now)
			if err != nil {
				return err
			}
			tallies[i] = tally
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errInternalStatisticsAborted(err)
	}

	snapshot := models.NewEmptyStatisticsSnapshot()
	for _, tally := range tallies {
		if err := a.rolluper.Rollup(snapshot, tally); err != nil {
			return nil, errInternalStatisticsRollupFailed(err)
		}
	}

	return snapshot, nil
}

// tallyStream reads every segment of stream forward. Unavailable segments contribute nothing;
// only cancellation is reported as an error.
func (a *statisticsAggregator) tallyStream(ctx context.Context, stream models.LogStream, now time.Time) (*StreamTally, error) {
	logger := loggers.Ctx(ctx).With().Str(loggers.FieldStream, string(stream)).Logger()
	tally := NewStreamTally(stream)

	segmentList, err := a.segmentLister.List(ctx, stream)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		logger.Warn().Err(err).Msg("failed to list segments, stream contributes no statistics")
		return tally, nil
	}

	for _, segment := range segmentList {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		segmentTally, err := a.tallySegment(ctx, segment, now)
		if err != nil {
			metricSegmentsUnavailableTotal.WithLabelValues(string(stream)).Inc()
			logger.Warn().Err(err).Str(loggers.FieldSegmentPath, segment.Path).Msg("skipping unavailable segment")
			continue
		}
		metricSegmentsAggregatedTotal.WithLabelValues(string(stream)).Inc()
		tally.Merge(segmentTally)
	}

	return tally, nil
}

func (a *statisticsAggregator) tallySegment(ctx context.Context, segment models.SegmentDescriptor, now time.Time) (*StreamTally, error) {
	rc, err := a.segmentLister.Open(ctx, segment)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	tally := NewStreamTally(segment.Stream)
	tally.FilesScanned = 1

	err = segments.ForEachLine(rc, func(line string) bool {
		switch segment.Stream {
		case models.StreamAccess:
			if record, ok := parsers.ParseAccess(line); ok {
				a.countAccess(tally, record, now)
			}
		case models.StreamError:
			if record, ok := parsers.ParseError(line); ok {
				a.countError(tally, record, now)
			}
		}
		return true
	})
	if err != nil {
		return nil, err
	}

	return tally, nil
}

func (a *statisticsAggregator) countAccess(tally *StreamTally, record *models.AccessRecord, now time.Time) {
	tally.Requests++
	if class, ok := statusClass(record.StatusCode); ok {
		tally.StatusClasses[class]++
	}

	if t, ok := a.normalizer.ParseAccessTimestamp(record.TimestampRaw); ok && a.normalizer.IsSameLocalDay(t, now) {
		tally.TodayRequests++
		tally.RequestsPerHour[a.normalizer.LocalHour(t)]++
	}

	tally.Bytes += record.BytesSent
	tally.IPs.Add(record.ClientAddress)
	if path := parsers.ParseRequestPath(record.RequestLine); path != "" {
		tally.URLs.Add(path)
	}

	if !useragents.IsPlaceholder(record.UserAgent) {
		info := a.classifier.Classify(record.UserAgent)
		tally.Browsers.Add(info.Browser)
		tally.OS.Add(info.OS)
	}
}

func (a *statisticsAggregator) countError(tally *StreamTally, record *models.ErrorRecord, now time.Time) {
	tally.Errors++
	if level, ok := record.Level.Normalize(); ok {
		tally.ErrorLevels[level]++
	}
	if t, ok := a.normalizer.ParseErrorTimestamp(record.TimestampRaw); ok && a.normalizer.IsSameLocalDay(t, now) {
		tally.TodayErrors++
	}
}
