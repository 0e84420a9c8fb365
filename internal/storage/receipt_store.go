package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	apperrors "asada-api/pkg/app_errors"

	"github.com/google/uuid"
)

// extensions for the accepted receipt image types.
var allowedContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/heic": ".heic",
	"image/heif": ".heif",
}

// ReceiptStore persists receipt images and serves back public URLs.
// The disk implementation stands in for an object store; swapping one
// in means implementing this interface.
type ReceiptStore interface {
	Save(ctx context.Context, reader io.Reader, contentType string, size int64) (url string, objectName string, err error)
	Remove(ctx context.Context, objectName string) error
}

type DiskReceiptStore struct {
	dir      string
	baseURL  string
	maxBytes int64
}

func NewDiskReceiptStore(dir, baseURL string, maxBytes int64) (*DiskReceiptStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &DiskReceiptStore{
		dir:      dir,
		baseURL:  baseURL,
		maxBytes: maxBytes,
	}, nil
}

func (s *DiskReceiptStore) Save(ctx context.Context, reader io.Reader, contentType string, size int64) (string, string, error) {
	ext, ok := allowedContentTypes[contentType]
	if !ok {
		return "", "", apperrors.ErrUnsupportedFileType
	}
	if size > s.maxBytes {
		return "", "", apperrors.ErrFileTooLarge
	}

	objectName := uuid.New().String() + ext
	path := filepath.Join(s.dir, objectName)

	f, err := os.Create(path)
	if err != nil {
		return "", "", err
	}

	// Guard the declared size with a hard limit on the actual bytes.
	written, err := io.Copy(f, io.LimitReader(reader, s.maxBytes+1))
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
		return "", "", err
	}
	if written > s.maxBytes {
		os.Remove(path)
		return "", "", apperrors.ErrFileTooLarge
	}

	return s.baseURL + "/" + objectName, objectName, nil
}

// Remove deletes a stored object. Missing files are not an error:
// receipt rows are the source of truth, files are best-effort.
func (s *DiskReceiptStore) Remove(ctx context.Context, objectName string) error {
	path := filepath.Join(s.dir, filepath.Base(objectName))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
