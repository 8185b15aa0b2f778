package filestorages

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrFileNotFound   = errors.New("file not found")
	ErrInvalidKey     = errors.New("invalid file key")
	ErrInvalidRootDir = errors.New("invalid root directory")
	ErrInvalidRange   = errors.New("invalid byte range")
)

// FileInfo describes one regular file directly under the storage root.
type FileInfo struct {
	Key  string
	Size int64
}

// FileStorage is a read-only view over a log directory. Keys are file names relative to the root.
//
//go:generate mockgen -source=file_storage.go -destination=./mocks/file_storage_mock.go -package=mocks
type FileStorage interface {
	// List returns the regular files whose name starts with prefix, sorted by name.
	// A missing root directory yields an empty list.
	List(ctx context.Context, prefix string) ([]FileInfo, error)
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	// Size returns the current byte length of key; ErrFileNotFound when it does not exist.
	Size(ctx context.Context, key string) (int64, error)
	// GetRange returns the bytes in [offset, offset+length) of key.
	GetRange(ctx context.Context, key string, offset, length int64) (io.ReadCloser, error)
	// Path resolves key to its absolute location on disk.
	Path(key string) string
}

type fileStorage struct {
	dir string
}

func NewFileStorage(rootDir string) (FileStorage, error) {
	if rootDir == "" {
		return nil, fmt.Errorf("%w: root directory cannot be empty", ErrInvalidRootDir)
	}

	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve absolute path: %w", ErrInvalidRootDir, err)
	}

	return &fileStorage{dir: absRootDir}, nil
}

func (s *fileStorage) List(ctx context.Context, prefix string) ([]FileInfo, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []FileInfo{}, nil
		}
		return nil, err
	}

	files := make([]FileInfo, 0, len(entries))
	for _, entry := range entries {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if !strings.HasPrefix(entry.Name(), prefix) || !entry.Type().IsRegular() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// Rotated away between ReadDir and Info
			continue
		}
		files = append(files, FileInfo{Key: entry.Name(), Size: info.Size()})
	}

	return files, nil
}

func (s *fileStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := s.validateKey(key); err != nil {
		return nil, err
	}

	file, err := os.Open(s.Path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}

	return file, nil
}

func (s *fileStorage) Size(ctx context.Context, key string) (int64, error) {
	if err := s.validateKey(key); err != nil {
		return 0, err
	}

	info, err := os.Stat(s.Path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return 0, ErrFileNotFound
		}
		return 0, err
	}

	return info.Size(), nil
}

func (s *fileStorage) GetRange(ctx context.Context, key string, offset, length int64) (io.ReadCloser, error) {
	if offset < 0 || length < 0 {
		return nil, fmt.Errorf("%w: offset=%d length=%d", ErrInvalidRange, offset, length)
	}

	rc, err := s.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	file := rc.(*os.File)

	if _, err := file.Seek(offset, io.SeekStart); err != nil {
		_ = file.Close()
		return nil, err
	}

	return &rangeReadCloser{Reader: io.LimitReader(file, length), closer: file}, nil
}

func (s *fileStorage) Path(key string) string {
	return filepath.Join(s.dir, filepath.Clean(key))
}

func (s *fileStorage) validateKey(key string) error {
	if key == "" {
		return ErrInvalidKey
	}
	if filepath.IsAbs(key) {
		return ErrInvalidKey
	}
	cleanPath := filepath.Clean(key)
	if cleanPath == ".." || cleanPath == "." {
		return ErrInvalidKey
	}
	if strings.HasPrefix(cleanPath, "..") {
		return ErrInvalidKey
	}
	// Additional check: ensure the resolved path is within the root directory
	fullPath := filepath.Join(s.dir, cleanPath)
	absRoot, err := filepath.Abs(s.dir)
	if err != nil {
		return ErrInvalidKey
	}
	absFull, err := filepath.Abs(fullPath)
	if err != nil {
		return ErrInvalidKey
	}
	rel, err := filepath.Rel(absRoot, absFull)
	if err != nil {
		return ErrInvalidKey
	}
	if strings.HasPrefix(rel, "..") {
		return ErrInvalidKey
	}
	return nil
}

type rangeReadCloser struct {
	io.Reader
	closer io.Closer
}

func (r *rangeReadCloser) Close() error {
	return r.closer.Close()
}
