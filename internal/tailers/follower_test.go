package tailers

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"log-viewer/internal/events"
	"log-viewer/internal/models"
	"log-viewer/internal/segments"
	"log-viewer/internal/shared/filestorages"
	fsmocks "log-viewer/internal/shared/filestorages/mocks"
	streammocks "log-viewer/internal/streams/mocks"
	"log-viewer/internal/useragents"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const firefoxUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:123.0) Gecko/20100101 Firefox/123.0"

var detectedAt = time.Date(2025, 11, 15, 12, 0, 1, 0, time.UTC)

type followerFixture struct {
	follower Follower
	producer *streammocks.MockTailBatchProducer
	dir      string
}

func newFollowerFixture(t *testing.T) *followerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	dir := t.TempDir()
	storage, err := filestorages.NewFileStorage(dir)
	require.NoError(t, err)

	producer := streammocks.NewMockTailBatchProducer(ctrl)
	follower := NewFollower(
		storage,
		segments.NewSegmentLister(storage, "access.log", "error.log"),
		useragents.NewClassifier(16),
		producer,
		WithFollowerClock(func() time.Time { return detectedAt }),
	)
	return &followerFixture{follower: follower, producer: producer, dir: dir}
}

func (f *followerFixture) write(t *testing.T, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(f.dir, name), []byte(content), 0644))
}

func (f *followerFixture) append(t *testing.T, name, content string) {
	t.Helper()
	file, err := os.OpenFile(filepath.Join(f.dir, name), os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
	require.NoError(t, err)
	defer file.Close()
	_, err = file.WriteString(content)
	require.NoError(t, err)
}

// paddedErrorLine returns a complete error log line of exactly size bytes, newline included.
func paddedErrorLine(t *testing.T, level string, size int) string {
	t.Helper()
	prefix := "2025/11/15 10:00:00 [" + level + "] "
	padding := size - len(prefix) - 1
	require.Positive(t, padding)
	return prefix + strings.Repeat("x", padding) + "\n"
}

func TestFollower_Track_MissingFileStartsAtZero(t *testing.T) {
	t.Parallel()

	f := newFollowerFixture(t)
	require.NoError(t, f.follower.Track(context.Background(), models.StreamAccess))

	length, ok := f.follower.TrackedLength(models.StreamAccess)
	assert.True(t, ok)
	assert.Equal(t, int64(0), length)

	_, ok = f.follower.TrackedLength(models.StreamError)
	assert.False(t, ok)
}

func TestFollower_Track_UnknownStream(t *testing.T) {
	t.Parallel()

	f := newFollowerFixture(t)
	err := f.follower.Track(context.Background(), models.LogStream("debug"))
	assert.ErrorIs(t, err, ErrUnknownStream)
}

func TestFollower_OnChangeDetected_GrowthEmitsOnlyTheDelta(t *testing.T) {
	t.Parallel()

	f := newFollowerFixture(t)
	ctx := context.Background()
	f.write(t, "error.log", paddedErrorLine(t, "info", 100))
	require.NoError(t, f.follower.Track(ctx, models.StreamError))

	var produced *events.TailBatchEvent
	f.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, event *events.TailBatchEvent) error {
		produced = event
		return nil
	}).Times(1)

	f.append(t, "error.log", paddedErrorLine(t, "error", 40))

	emitted, err := f.follower.OnChangeDetected(ctx, models.StreamError)
	require.NoError(t, err)
	assert.Equal(t, 1, emitted)

	length, _ := f.follower.TrackedLength(models.StreamError)
	assert.Equal(t, int64(140), length)

	require.NotNil(t, produced)
	assert.NotEmpty(t, produced.BatchID)
	assert.Equal(t, models.StreamError, produced.Stream)
	assert.Equal(t, int64(100), produced.FromOffset)
	assert.Equal(t, int64(140), produced.ToOffset)
	assert.Equal(t, detectedAt, produced.DetectedAt)
	require.Len(t, produced.Logs, 1)
	view := produced.Logs[0].(*models.ErrorLogView)
	assert.Equal(t, models.LevelError, view.Level)

	// A duplicate notification without further growth emits nothing.
	emitted, err = f.follower.OnChangeDetected(ctx, models.StreamError)
	require.NoError(t, err)
	assert.Equal(t, 0, emitted)
}

func TestFollower_OnChangeDetected_AccessRecordsClassifiedEagerly(t *testing.T) {
	t.Parallel()

	f := newFollowerFixture(t)
	ctx := context.Background()
	require.NoError(t, f.follower.Track(ctx, models.StreamAccess))

	var produced *events.TailBatchEvent
	f.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, event *events.TailBatchEvent) error {
		produced = event
		return nil
	})

	f.append(t, "access.log",
		`203.0.113.7 - - [15/Nov/2025:12:00:00 +0000] "GET /about?ref=home HTTP/1.1" 200 512 "-" "`+firefoxUA+`"`+"\n"+
			"not an access line\n"+
			`203.0.113.8 - - [15/Nov/2025:12:00:01 +0000] "GET / HTTP/1.1" 304 0 "-" "-"`+"\r\n")

	emitted, err := f.follower.OnChangeDetected(ctx, models.StreamAccess)
	require.NoError(t, err)
	assert.Equal(t, 2, emitted)

	require.Len(t, produced.Logs, 2)
	first := produced.Logs[0].(*models.AccessLogView)
	assert.Equal(t, "203.0.113.7", first.ClientAddress)
	assert.Equal(t, "Firefox", first.Browser)
	assert.Equal(t, "Windows", first.OS)
	assert.Equal(t, "/about", first.RequestPath)

	second := produced.Logs[1].(*models.AccessLogView)
	assert.Equal(t, models.UnknownLabel, second.Browser)
	assert.Equal(t, "-", second.UserAgent)
}

func TestFollower_OnChangeDetected_ShrinkResetsWithoutEmitting(t *testing.T) {
	t.Parallel()

	f := newFollowerFixture(t)
	ctx := context.Background()
	f.write(t, "error.log", strings.Repeat(paddedErrorLine(t, "info", 100), 5))
	require.NoError(t, f.follower.Track(ctx, models.StreamError))

	length, _ := f.follower.TrackedLength(models.StreamError)
	require.Equal(t, int64(500), length)

	f.write(t, "error.log", paddedErrorLine(t, "warn", 50))

	emitted, err := f.follower.OnChangeDetected(ctx, models.StreamError)
	require.NoError(t, err)
	assert.Equal(t, 0, emitted)

	length, _ = f.follower.TrackedLength(models.StreamError)
	assert.Equal(t, int64(50), length)
}

func TestFollower_OnChangeDetected_RemovedFileTreatedAsRotation(t *testing.T) {
	t.Parallel()

	f := newFollowerFixture(t)
	ctx := context.Background()
	f.write(t, "access.log", "something\n")
	require.NoError(t, f.follower.Track(ctx, models.StreamAccess))

	require.NoError(t, os.Remove(filepath.Join(f.dir, "access.log")))

	emitted, err := f.follower.OnChangeDetected(ctx, models.StreamAccess)
	require.NoError(t, err)
	assert.Equal(t, 0, emitted)
	length, _ := f.follower.TrackedLength(models.StreamAccess)
	assert.Equal(t, int64(0), length)
}

func TestFollower_OnChangeDetected_PartialLineNotEmitted(t *testing.T) {
	t.Parallel()

	f := newFollowerFixture(t)
	ctx := context.Background()
	require.NoError(t, f.follower.Track(ctx, models.StreamError))

	f.append(t, "error.log", "2025/11/15 10:00:02 [warn] no terminator yet")

	emitted, err := f.follower.OnChangeDetected(ctx, models.StreamError)
	require.NoError(t, err)
	assert.Equal(t, 0, emitted)

	length, _ := f.follower.TrackedLength(models.StreamError)
	assert.Equal(t, int64(len("2025/11/15 10:00:02 [warn] no terminator yet")), length)
}

func TestFollower_OnChangeDetected_UntrackedStreamStartsTracking(t *testing.T) {
	t.Parallel()

	f := newFollowerFixture(t)
	f.write(t, "error.log", paddedErrorLine(t, "info", 60))

	emitted, err := f.follower.OnChangeDetected(context.Background(), models.StreamError)
	require.NoError(t, err)
	assert.Equal(t, 0, emitted)

	length, ok := f.follower.TrackedLength(models.StreamError)
	assert.True(t, ok)
	assert.Equal(t, int64(60), length)
}

func TestFollower_OnChangeDetected_ProduceFailureKeepsTrackedLength(t *testing.T) {
	t.Parallel()

	f := newFollowerFixture(t)
	ctx := context.Background()
	require.NoError(t, f.follower.Track(ctx, models.StreamError))

	f.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(context.Canceled)
	f.append(t, "error.log", paddedErrorLine(t, "crit", 40))

	_, err := f.follower.OnChangeDetected(ctx, models.StreamError)
	assert.ErrorIs(t, err, context.Canceled)

	length, _ := f.follower.TrackedLength(models.StreamError)
	assert.Equal(t, int64(0), length)
}

func TestFollower_OnChangeDetected_ReadFailureKeepsTrackedLength(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	storage := fsmocks.NewMockFileStorage(ctrl)
	producer := streammocks.NewMockTailBatchProducer(ctrl)
	follower := NewFollower(storage, segments.NewSegmentLister(storage, "access.log", "error.log"), useragents.NewClassifier(1), producer)
	ctx := context.Background()

	gomock.InOrder(
		storage.EXPECT().Size(gomock.Any(), "access.log").Return(int64(100), nil),
		storage.EXPECT().Size(gomock.Any(), "access.log").Return(int64(140), nil),
		storage.EXPECT().GetRange(gomock.Any(), "access.log", int64(100), int64(40)).Return(nil, errors.New("i/o error")),
		storage.EXPECT().Size(gomock.Any(), "access.log").Return(int64(100), nil),
	)

	require.NoError(t, follower.Track(ctx, models.StreamAccess))

	_, err := follower.OnChangeDetected(ctx, models.StreamAccess)
	assert.EqualError(t, err, "i/o error")
	length, _ := follower.TrackedLength(models.StreamAccess)
	assert.Equal(t, int64(100), length)

	// The length no longer exceeds the confirmed offset, so the delta is lost.
	emitted, err := follower.OnChangeDetected(ctx, models.StreamAccess)
	require.NoError(t, err)
	assert.Equal(t, 0, emitted)
}

func TestFollower_OnChangeDetected_SizeFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	storage := fsmocks.NewMockFileStorage(ctrl)
	follower := NewFollower(storage, segments.NewSegmentLister(storage, "access.log", "error.log"), useragents.NewClassifier(1), streammocks.NewMockTailBatchProducer(ctrl))

	storage.EXPECT().Size(gomock.Any(), "error.log").Return(int64(0), errors.New("permission denied"))

	err := follower.Track(context.Background(), models.StreamError)
	assert.Error(t, err)
	_, ok := follower.TrackedLength(models.StreamError)
	assert.False(t, ok)
}
