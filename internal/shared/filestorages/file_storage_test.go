package filestorages

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileStorage_EmptyRootDir(t *testing.T) {
	t.Parallel()

	_, err := NewFileStorage("")
	assert.ErrorIs(t, err, ErrInvalidRootDir)
}

func TestList_FiltersByPrefixAndSkipsDirectories(t *testing.T) {
	t.Parallel()

	storage, dir := newTestStorage(t)
	ctx := context.Background()

	writeFile(t, dir, "access.log", "a\n")
	writeFile(t, dir, "access.log.1", "bb\n")
	writeFile(t, dir, "error.log", "c\n")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "access.log.d"), 0755))

	files, err := storage.List(ctx, "access.log")
	require.NoError(t, err)
	assert.Equal(t, []FileInfo{
		{Key: "access.log", Size: 2},
		{Key: "access.log.1", Size: 3},
	}, files)
}

func TestList_MissingRootDir(t *testing.T) {
	t.Parallel()

	storage, err := NewFileStorage(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)

	files, err := storage.List(context.Background(), "access.log")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestGet_InvalidKey(t *testing.T) {
	t.Parallel()

	storage, _ := newTestStorage(t)
	ctx := context.Background()

	invalidKeys := []string{
		"",
		"/absolute/path",
		"..",
		"../file.txt",
		"../../etc/passwd",
		"logs/../../etc/passwd",
		"../",
		"a/../..",
		".",
	}

	for _, key := range invalidKeys {
		t.Run(key, func(t *testing.T) {
			_, err := storage.Get(ctx, key)
			assert.ErrorIs(t, err, ErrInvalidKey, "key %q should be invalid", key)
		})
	}
}

func TestGet_FileNotFound(t *testing.T) {
	t.Parallel()

	storage, _ := newTestStorage(t)

	_, err := storage.Get(context.Background(), "nonexistent.log")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestGet_ReturnsReadCloser(t *testing.T) {
	t.Parallel()

	storage, dir := newTestStorage(t)
	writeFile(t, dir, "access.log", "test data")

	readCloser, err := storage.Get(context.Background(), "access.log")
	require.NoError(t, err)

	content, err := io.ReadAll(readCloser)
	require.NoError(t, err)
	assert.Equal(t, "test data", string(content))
	require.NoError(t, readCloser.Close())
}

func TestSize(t *testing.T) {
	t.Parallel()

	storage, dir := newTestStorage(t)
	ctx := context.Background()
	writeFile(t, dir, "error.log", "0123456789")

	size, err := storage.Size(ctx, "error.log")
	require.NoError(t, err)
	assert.Equal(t, int64(10), size)

	_, err = storage.Size(ctx, "missing.log")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestGetRange(t *testing.T) {
	t.Parallel()

	storage, dir := newTestStorage(t)
	ctx := context.Background()
	writeFile(t, dir, "access.log", "first line\nsecond line\n")

	readCloser, err := storage.GetRange(ctx, "access.log", 11, 12)
	require.NoError(t, err)
	defer readCloser.Close()

	content, err := io.ReadAll(readCloser)
	require.NoError(t, err)
	assert.Equal(t, "second line\n", string(content))
}

func TestGetRange_InvalidRange(t *testing.T) {
	t.Parallel()

	storage, dir := newTestStorage(t)
	writeFile(t, dir, "access.log", "x")

	_, err := storage.GetRange(context.Background(), "access.log", -1, 5)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestPath(t *testing.T) {
	t.Parallel()

	storage, dir := newTestStorage(t)
	absDir, err := filepath.Abs(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(absDir, "access.log"), storage.Path("access.log"))
}

func newTestStorage(t *testing.T) (FileStorage, string) {
	tmpDir := t.TempDir()
	storage, err := NewFileStorage(tmpDir)
	require.NoError(t, err)
	return storage, tmpDir
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}
