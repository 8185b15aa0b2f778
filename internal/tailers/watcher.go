package tailers

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"log-viewer/internal/models"
	"log-viewer/internal/segments"
	"log-viewer/internal/shared/filestorages"
	"log-viewer/internal/shared/loggers"

	"github.com/fsnotify/fsnotify"
)

const (
	defaultPollInterval = 2 * time.Second
	defaultDebounce     = 100 * time.Millisecond
)

// Watcher owns a Follower and drives it from a single goroutine. Filesystem notifications for
// the live files are debounced; a poll ticker covers missed or unsupported notifications.
// Notifications may be spurious, late, or duplicated: the follower always recomputes from its
// tracked length.
type Watcher struct {
	follower     Follower
	livePaths    map[string]models.LogStream
	dir          string
	pollInterval time.Duration
	debounce     time.Duration
	logger       loggers.Logger

	wg       sync.WaitGroup
	stopOnce sync.Once
	stopCh   chan struct{}
}

func NewWatcher(follower Follower, fileStorage filestorages.FileStorage, segmentLister segments.SegmentLister, pollInterval, debounce time.Duration, logger loggers.Logger) *Watcher {
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	if debounce < 0 {
		debounce = defaultDebounce
	}

	livePaths := make(map[string]models.LogStream, len(models.Streams))
	dir := ""
	for _, stream := range models.Streams {
		path := filepath.Clean(fileStorage.Path(segmentLister.LiveKey(stream)))
		livePaths[path] = stream
		dir = filepath.Dir(path)
	}

	return &Watcher{
		follower:     follower,
		livePaths:    livePaths,
		dir:          dir,
		pollInterval: pollInterval,
		debounce:     debounce,
		logger:       logger,
		stopCh:       make(chan struct{}),
	}
}

// Start tracks every stream at its current length and launches the watch loop.
// Failing to set up notifications is not fatal; the loop then relies on polling alone.
func (w *Watcher) Start(ctx context.Context) {
	ctx = w.logger.WithContext(ctx)
	for _, stream := range models.Streams {
		if err := w.follower.Track(ctx, stream); err != nil {
			w.logger.Error().Err(err).Str(loggers.FieldStream, string(stream)).Msg("failed to track live file, retrying on next change")
		}
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		w.logger.Warn().Err(err).Msg("filesystem notifications unavailable, polling only")
		fsWatcher = nil
	} else if err := fsWatcher.Add(w.dir); err != nil {
		w.logger.Warn().Err(err).Str(loggers.FieldSegmentPath, w.dir).Msg("cannot watch log directory, polling only")
		_ = fsWatcher.Close()
		fsWatcher = nil
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		if fsWatcher != nil {
			defer fsWatcher.Close()
		}
		w.watchLoop(ctx, fsWatcher)
	}()
}

// Stop terminates the watch loop and waits for it to exit.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

func (w *Watcher) watchLoop(ctx context.Context, fsWatcher *fsnotify.Watcher) {
	var (
		fsEvents <-chan fsnotify.Event
		fsErrors <-chan error
	)
	if fsWatcher != nil {
		fsEvents = fsWatcher.Events
		fsErrors = fsWatcher.Errors
	}

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	var (
		debounceTimer *time.Timer
		debounceC     <-chan time.Time
	)
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()
	pending := make(map[models.LogStream]struct{}, len(models.Streams))

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return

		case event, ok := <-fsEvents:
			if !ok {
				fsEvents = nil
				continue
			}
			stream, relevant := w.streamOf(event)
			if !relevant {
				continue
			}
			pending[stream] = struct{}{}
			if w.debounce == 0 {
				w.process(ctx, pending)
				continue
			}
			if debounceTimer == nil {
				debounceTimer = time.NewTimer(w.debounce)
			} else {
				debounceTimer.Reset(w.debounce)
			}
			debounceC = debounceTimer.C

		case <-debounceC:
			debounceC = nil
			w.process(ctx, pending)

		case <-ticker.C:
			for _, stream := range models.Streams {
				pending[stream] = struct{}{}
			}
			w.process(ctx, pending)

		case err, ok := <-fsErrors:
			if !ok {
				fsErrors = nil
				continue
			}
			w.logger.Warn().Err(err).Msg("filesystem watcher error")
		}
	}
}

func (w *Watcher) streamOf(event fsnotify.Event) (models.LogStream, bool) {
	if event.Name == "" {
		return "", false
	}
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return "", false
	}
	stream, ok := w.livePaths[filepath.Clean(event.Name)]
	return stream, ok
}

// process runs the follower for every pending stream and clears the set. Failures drop the
// event; the tracked length stays put.
func (w *Watcher) process(ctx context.Context, pending map[models.LogStream]struct{}) {
	for _, stream := range models.Streams {
		if _, ok := pending[stream]; !ok {
			continue
		}
		delete(pending, stream)

		if _, err := w.follower.OnChangeDetected(ctx, stream); err != nil {
			w.logger.Error().Err(err).Str(loggers.FieldStream, string(stream)).Msg("failed to process live file change")
		}
	}
}
