package tailers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"log-viewer/internal/events"
	"log-viewer/internal/models"
	"log-viewer/internal/parsers"
	"log-viewer/internal/segments"
	"log-viewer/internal/shared/filestorages"
	"log-viewer/internal/shared/loggers"
	"log-viewer/internal/shared/ulid"
	"log-viewer/internal/streams"
	"log-viewer/internal/useragents"
)

// Follower tracks the byte length of each live file and emits only what was appended.
// It holds no lock: the watch loop that owns it is the only caller.
//
//go:generate mockgen -source=follower.go -destination=./mocks/follower_mock.go -package=mocks
type Follower interface {
	// Track starts tracking stream at the live file's current length, 0 when it is absent.
	Track(ctx context.Context, stream models.LogStream) error
	// OnChangeDetected compares the live file's length with the tracked one and emits the
	// records of any appended complete lines. It returns the number of records emitted.
	OnChangeDetected(ctx context.Context, stream models.LogStream) (int, error)
	// TrackedLength reports the last confirmed length of stream's live file.
	TrackedLength(stream models.LogStream) (int64, bool)
}

type tailState struct {
	key            string
	lastByteLength int64
}

type FollowerOption func(*follower)

// WithFollowerClock overrides the time stamped on emitted batches.
func WithFollowerClock(clock func() time.Time) FollowerOption {
	return func(f *follower) {
		f.clock = clock
	}
}

type follower struct {
	fileStorage   filestorages.FileStorage
	segmentLister segments.SegmentLister
	classifier    useragents.Classifier
	producer      streams.TailBatchProducer
	clock         func() time.Time

	states map[models.LogStream]*tailState
}

func NewFollower(fileStorage filestorages.FileStorage, segmentLister segments.SegmentLister, classifier useragents.Classifier, producer streams.TailBatchProducer, opts ...FollowerOption) Follower {
	f := &follower{
		fileStorage:   fileStorage,
		segmentLister: segmentLister,
		classifier:    classifier,
		producer:      producer,
		clock:         time.Now,
		states:        make(map[models.LogStream]*tailState, len(models.Streams)),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *follower) Track(ctx context.Context, stream models.LogStream) error {
	if !stream.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownStream, stream)
	}
	key := f.segmentLister.LiveKey(stream)

	length, err := f.currentLength(ctx, key)
	if err != nil {
		return err
	}
	f.states[stream] = &tailState{key: key, lastByteLength: length}

	loggers.Ctx(ctx).Debug().
		Str(loggers.FieldStream, string(stream)).
		Int64(loggers.FieldNewLength, length).
		Msg("tracking live file")
	return nil
}

func (f *follower) TrackedLength(stream models.LogStream) (int64, bool) {
	state, ok := f.states[stream]
	if !ok {
		return 0, false
	}
	return state.lastByteLength, true
}

func (f *follower) OnChangeDetected(ctx context.Context, stream models.LogStream) (int, error) {
	state, ok := f.states[stream]
	if !ok {
		// A stream whose tracking failed at startup starts from its current length.
		return 0, f.Track(ctx, stream)
	}

	emitted, err := f.onChangeDetected(ctx, stream, state)
	if err != nil {
		metricEventErrorsTotal.WithLabelValues(string(stream)).Inc()
	}
	return emitted, err
}

func (f *follower) onChangeDetected(ctx context.Context, stream models.LogStream, state *tailState) (int, error) {
	logger := loggers.Ctx(ctx).With().
		Str(loggers.FieldStream, string(stream)).
		Int64(loggers.FieldPrevLength, state.lastByteLength).
		Logger()

	length, err := f.currentLength(ctx, state.key)
	if err != nil {
		return 0, err
	}
	prev := state.lastByteLength

	switch {
	case length == prev:
		return 0, nil

	case length < prev:
		// Rotation or truncation: bytes between the old and new length are never tailed.
		state.lastByteLength = length
		metricRotationsTotal.WithLabelValues(string(stream)).Inc()
		logger.Info().Int64(loggers.FieldNewLength, length).Msg("live file shrank, resetting tracked length")
		return 0, nil
	}

	metricGrowthEventsTotal.WithLabelValues(string(stream)).Inc()

	delta, err := f.readRange(ctx, state.key, prev, length)
	if err != nil {
		return 0, err
	}

	records := f.parseCompleteLines(stream, delta)
	if len(records) > 0 {
		detectedAt := f.clock().UTC()
		event := &events.TailBatchEvent{
			BatchID:    ulid.NewULIDAt(detectedAt),
			Stream:     stream,
			FromOffset: prev,
			ToOffset:   length,
			DetectedAt: detectedAt,
			Logs:       records,
		}
		if err := f.producer.Produce(ctx, event); err != nil {
			return 0, fmt.Errorf("failed to publish tail batch: %w", err)
		}
		metricRecordsEmittedTotal.WithLabelValues(string(stream)).Add(float64(len(records)))
		logger.Debug().
			Str(loggers.FieldBatchID, event.BatchID).
			Int64(loggers.FieldNewLength, length).
			Msgf("emitted %d tailed records", len(records))
	}

	state.lastByteLength = length
	return len(records), nil
}

func (f *follower) currentLength(ctx context.Context, key string) (int64, error) {
	length, err := f.fileStorage.Size(ctx, key)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return length, nil
}

func (f *follower) readRange(ctx context.Context, key string, from, to int64) ([]byte, error) {
	rc, err := f.fileStorage.GetRange(ctx, key, from, to-from)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return io.ReadAll(rc)
}

// parseCompleteLines parses every newline-terminated line of delta. A trailing fragment
// without a terminator is not parsed.
func (f *follower) parseCompleteLines(stream models.LogStream, delta []byte) []models.LogRecord {
	records := make([]models.LogRecord, 0)
	for {
		i := bytes.IndexByte(delta, '\n')
		if i < 0 {
			return records
		}
		line := segments.TrimLineEnding(string(delta[:i]))
		delta = delta[i+1:]

		if record, ok := f.parseLine(stream, line); ok {
			records = append(records, record)
		}
	}
}

func (f *follower) parseLine(stream models.LogStream, line string) (models.LogRecord, bool) {
	switch stream {
	case models.StreamAccess:
		record, ok := parsers.ParseAccess(line)
		if !ok {
			return nil, false
		}
		info := f.classifier.Classify(record.UserAgent)
		return &models.AccessLogView{
			AccessRecord: *record,
			Browser:      info.Browser,
			OS:           info.OS,
			RequestPath:  parsers.ParseRequestPath(record.RequestLine),
		}, true
	case models.StreamError:
		record, ok := parsers.ParseError(line)
		if !ok {
			return nil, false
		}
		return &models.ErrorLogView{ErrorRecord: *record}, true
	default:
		return nil, false
	}
}
