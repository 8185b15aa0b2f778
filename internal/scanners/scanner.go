package scanners

import (
	"context"
	"math"
	"time"

	"log-viewer/internal/models"
	"log-viewer/internal/parsers"
	"log-viewer/internal/segments"
	"log-viewer/internal/shared/loggers"
	"log-viewer/internal/shared/metrics"
	"log-viewer/internal/shared/svcerrors"
	"log-viewer/internal/useragents"
)

const defaultSafetyMargin = 1000

//go:generate mockgen -source=scanner.go -destination=./mocks/scanner_mock.go -package=mocks
type Scanner interface {
	// Scan returns one page of the stream's matching records, newest first.
	// Missing files and unreadable segments degrade to fewer (or zero) records, never to an error.
	Scan(ctx context.Context, stream models.LogStream, query models.QuerySpec) (*models.QueryResult, error)
}

type reverseChronScanner struct {
	segmentLister segments.SegmentLister
	normalizer    *parsers.Normalizer
	classifier    useragents.Classifier
	safetyMargin  int
}

// NewScanner returns a Scanner that stops counting once safetyMargin matches lie beyond the
// requested page; the count of such a scan is a lower bound.
func NewScanner(segmentLister segments.SegmentLister, normalizer *parsers.Normalizer, classifier useragents.Classifier, safetyMargin int) Scanner {
	if safetyMargin < 0 {
		safetyMargin = defaultSafetyMargin
	}
	return &reverseChronScanner{
		segmentLister: segmentLister,
		normalizer:    normalizer,
		classifier:    classifier,
		safetyMargin:  safetyMargin,
	}
}

func (s *reverseChronScanner) Scan(ctx context.Context, stream models.LogStream, query models.QuerySpec) (*models.QueryResult, error) {
	startTime := time.Now()
	result, err := s.scan(ctx, stream, query)

	errorCode := metrics.ValueNoError
	if svcErr, ok := svcerrors.As(err); ok {
		errorCode = svcErr.Code
	}
	metricScanDuration.WithLabelValues(string(stream), errorCode).Observe(time.Since(startTime).Seconds())

	return result, err
}

func (s *reverseChronScanner) scan(ctx context.Context, stream models.LogStream, query models.QuerySpec) (*models.QueryResult, error) {
	if !stream.Valid() {
		return nil, errUnknownStream(string(stream))
	}
	if err := ctx.Err(); err != nil {
		return nil, errInternalScanAborted(err)
	}
	query = query.Clamped()

	logger := loggers.Ctx(ctx).With().Str(loggers.FieldStream, string(stream)).Logger()

	exists, err := s.segmentLister.HasLiveFile(ctx, stream)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to stat live file, treating stream as empty")
		return emptyResult(query), nil
	}
	if !exists {
		logger.Debug().Msg("live file missing, returning empty result")
		return emptyResult(query), nil
	}

	segmentList, err := s.segmentLister.List(ctx, stream)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to list segments, treating stream as empty")
		return emptyResult(query), nil
	}

	matcher := newRecordMatcher(stream, query, s.normalizer)
	offset := query.Offset()
	pageEnd := offset + query.PageSize
	ceiling := pageEnd + s.safetyMargin
	if ceiling < pageEnd {
		ceiling = math.MaxInt
	}

	matchingCount := 0
	approximate := false
	logs := make([]models.LogRecord, 0, query.PageSize)

scanSegments:
	for _, segment := range segmentList {
		if err := ctx.Err(); err != nil {
			return nil, errInternalScanAborted(err)
		}

		lines, err := s.readSegment(ctx, segment)
		if err != nil {
			metricSegmentsUnavailableTotal.WithLabelValues(string(stream)).Inc()
			logger.Warn().Err(err).Str(loggers.FieldSegmentPath, segment.Path).Msg("skipping unavailable segment")
			continue
		}
		metricSegmentsScannedTotal.WithLabelValues(string(stream)).Inc()

		// Newest line of the segment first.
		for i := len(lines) - 1; i >= 0; i-- {
			record, ok := matcher.match(lines[i])
			if !ok {
				continue
			}

			matchingCount++
			if matchingCount > offset && matchingCount <= pageEnd {
				logs = append(logs, s.materialize(record))
			}

			if matchingCount > ceiling {
				approximate = true
				metricEarlyExitTotal.WithLabelValues(string(stream)).Inc()
				break scanSegments
			}
		}
	}

	return models.NewQueryResult(matchingCount, query.Page, query.PageSize, approximate, logs), nil
}

func (s *reverseChronScanner) readSegment(ctx context.Context, segment models.SegmentDescriptor) ([]string, error) {
	rc, err := s.segmentLister.Open(ctx, segment)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return segments.ReadLines(rc)
}

// materialize derives the read-time fields of a record that made it onto the page.
func (s *reverseChronScanner) materialize(record models.LogRecord) models.LogRecord {
	view, ok := record.(*models.AccessLogView)
	if !ok {
		return record
	}
	info := s.classifier.Classify(view.UserAgent)
	view.Browser = info.Browser
	view.OS = info.OS
	view.RequestPath = parsers.ParseRequestPath(view.RequestLine)
	return view
}

func emptyResult(query models.QuerySpec) *models.QueryResult {
	return models.NewQueryResult(0, query.Page, query.PageSize, false, nil)
}
