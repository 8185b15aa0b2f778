package segments

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"log-viewer/internal/models"
	"log-viewer/internal/shared/filestorages"

	"github.com/klauspost/compress/gzip"
)

const compressedSuffix = ".gz"

var rotationIndexPattern = regexp.MustCompile(`\d+`)

//go:generate mockgen -source=segment_lister.go -destination=./mocks/segment_lister_mock.go -package=mocks
type SegmentLister interface {
	// List returns the segments of stream, live file first, then rotations by ascending index.
	List(ctx context.Context, stream models.LogStream) ([]models.SegmentDescriptor, error)
	// Open returns the decompressed byte stream of segment.
	Open(ctx context.Context, segment models.SegmentDescriptor) (io.ReadCloser, error)
	// LiveKey returns the storage key of the stream's live file.
	LiveKey(stream models.LogStream) string
	// HasLiveFile reports whether the stream's live file currently exists.
	HasLiveFile(ctx context.Context, stream models.LogStream) (bool, error)
}

type segmentLister struct {
	fileStorage filestorages.FileStorage
	liveKeys    map[models.LogStream]string
}

func NewSegmentLister(fileStorage filestorages.FileStorage, accessFile, errorFile string) SegmentLister {
	return &segmentLister{
		fileStorage: fileStorage,
		liveKeys: map[models.LogStream]string{
			models.StreamAccess: accessFile,
			models.StreamError:  errorFile,
		},
	}
}

func (l *segmentLister) LiveKey(stream models.LogStream) string {
	return l.liveKeys[stream]
}

func (l *segmentLister) HasLiveFile(ctx context.Context, stream models.LogStream) (bool, error) {
	liveKey, ok := l.liveKeys[stream]
	if !ok {
		return false, fmt.Errorf("unknown log stream %q", stream)
	}
	if _, err := l.fileStorage.Size(ctx, liveKey); err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (l *segmentLister) List(ctx context.Context, stream models.LogStream) ([]models.SegmentDescriptor, error) {
	liveKey, ok := l.liveKeys[stream]
	if !ok {
		return nil, fmt.Errorf("unknown log stream %q", stream)
	}

	files, err := l.fileStorage.List(ctx, liveKey)
	if err != nil {
		return nil, fmt.Errorf("failed to list segments of %s: %w", stream, err)
	}

	segments := make([]models.SegmentDescriptor, 0, len(files))
	for _, file := range files {
		segments = append(segments, models.SegmentDescriptor{
			Stream:       stream,
			Key:          file.Key,
			Path:         l.fileStorage.Path(file.Key),
			OrdinalRank:  ordinalRank(liveKey, file.Key),
			IsCompressed: strings.HasSuffix(file.Key, compressedSuffix),
			Size:         file.Size,
		})
	}

	// Storage lists by name, so unranked segments keep name order among themselves.
	sort.SliceStable(segments, func(i, j int) bool {
		return segments[i].OrdinalRank < segments[j].OrdinalRank
	})

	return segments, nil
}

func (l *segmentLister) Open(ctx context.Context, segment models.SegmentDescriptor) (io.ReadCloser, error) {
	file, err := l.fileStorage.Get(ctx, segment.Key)
	if err != nil {
		return nil, err
	}
	if !segment.IsCompressed {
		return file, nil
	}

	gz, err := gzip.NewReader(bufio.NewReader(file))
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to open compressed segment %s: %w", segment.Key, err)
	}
	return &gzipReadCloser{Reader: gz, file: file}, nil
}

// ordinalRank ranks the exact live name 0 and everything else by the first integer embedded
// after the live name, so "access.log.2.gz" ranks 2.
func ordinalRank(liveKey, key string) int {
	if key == liveKey {
		return 0
	}
	digits := rotationIndexPattern.FindString(strings.TrimPrefix(key, liveKey))
	if digits == "" {
		return models.RankUnordered
	}
	rank, err := strconv.Atoi(digits)
	if err != nil || rank <= 0 {
		// Overflowing or zero indices cannot outrank the live file.
		return models.RankUnordered
	}
	return rank
}

type gzipReadCloser struct {
	*gzip.Reader
	file io.Closer
}

func (g *gzipReadCloser) Close() error {
	return errors.Join(g.Reader.Close(), g.file.Close())
}
