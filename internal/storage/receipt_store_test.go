package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"asada-api/internal/storage"
	apperrors "asada-api/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, maxBytes int64) (*storage.DiskReceiptStore, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewDiskReceiptStore(dir, "/uploads", maxBytes)
	require.NoError(t, err)
	return store, dir
}

func TestDiskReceiptStore_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - stores file and returns URL with extension", func(t *testing.T) {
		store, dir := newTestStore(t, 1024)
		body := "fake jpeg bytes"

		url, objectName, err := store.Save(ctx, strings.NewReader(body), "image/jpeg", int64(len(body)))

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(url, "/uploads/"))
		assert.True(t, strings.HasSuffix(objectName, ".jpg"))
		assert.Equal(t, "/uploads/"+objectName, url)

		data, err := os.ReadFile(filepath.Join(dir, objectName))
		require.NoError(t, err)
		assert.Equal(t, body, string(data))
	})

	t.Run("Failure - rejects unsupported content type", func(t *testing.T) {
		store, dir := newTestStore(t, 1024)

		_, _, err := store.Save(ctx, strings.NewReader("%PDF-1.4"), "application/pdf", 8)

		assert.ErrorIs(t, err, apperrors.ErrUnsupportedFileType)
		entries, readErr := os.ReadDir(dir)
		require.NoError(t, readErr)
		assert.Empty(t, entries)
	})

	t.Run("Failure - rejects declared size over the cap", func(t *testing.T) {
		store, _ := newTestStore(t, 10)

		_, _, err := store.Save(ctx, strings.NewReader("small"), "image/png", 11)

		assert.ErrorIs(t, err, apperrors.ErrFileTooLarge)
	})

	t.Run("Failure - rejects body larger than the declared size", func(t *testing.T) {
		store, dir := newTestStore(t, 10)
		body := strings.Repeat("x", 64)

		_, _, err := store.Save(ctx, strings.NewReader(body), "image/png", 10)

		assert.ErrorIs(t, err, apperrors.ErrFileTooLarge)
		entries, readErr := os.ReadDir(dir)
		require.NoError(t, readErr)
		assert.Empty(t, entries, "oversized upload must not leave a file behind")
	})
}

func TestDiskReceiptStore_Remove(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - removes a stored object", func(t *testing.T) {
		store, dir := newTestStore(t, 1024)
		_, objectName, err := store.Save(ctx, strings.NewReader("bytes"), "image/webp", 5)
		require.NoError(t, err)

		require.NoError(t, store.Remove(ctx, objectName))

		_, statErr := os.Stat(filepath.Join(dir, objectName))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("Success - missing object is not an error", func(t *testing.T) {
		store, _ := newTestStore(t, 1024)

		assert.NoError(t, store.Remove(ctx, "does-not-exist.jpg"))
	})

	t.Run("Success - path traversal is stripped to the base name", func(t *testing.T) {
		store, _ := newTestStore(t, 1024)

		assert.NoError(t, store.Remove(ctx, "../../etc/passwd"))
	})
}
