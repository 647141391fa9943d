package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalUploader writes media under a directory served at publicURL.
type LocalUploader struct {
	baseDir   string
	publicURL string
}

// NewLocalUploader ensures the base directory exists and returns a handle.
func NewLocalUploader(baseDir, publicURL string) (*LocalUploader, error) {
	if baseDir == "" {
		baseDir = "./media"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create media directory: %w", err)
	}
	return &LocalUploader{baseDir: baseDir, publicURL: strings.TrimRight(publicURL, "/")}, nil
}

// Upload copies the object body to disk.
func (s *LocalUploader) Upload(ctx context.Context, obj Object) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if obj.Key == "" || obj.Body == nil {
		return "", fmt.Errorf("upload requires key and body")
	}
	target := s.resolve(obj.Key)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("prepare media directory: %w", err)
	}
	file, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("create media file: %w", err)
	}
	defer file.Close() //nolint:errcheck
	if _, err := io.Copy(file, obj.Body); err != nil {
		_ = os.Remove(target)
		return "", fmt.Errorf("write media file: %w", err)
	}
	return s.publicURL + "/" + filepath.ToSlash(obj.Key), nil
}

// Delete removes the file behind url. Unknown URLs and missing files are ignored.
func (s *LocalUploader) Delete(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key, ok := keyFromURL(s.publicURL, url)
	if !ok {
		return nil
	}
	if err := os.Remove(s.resolve(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete media file: %w", err)
	}
	return nil
}

// Dir returns the directory served as static media.
func (s *LocalUploader) Dir() string {
	return s.baseDir
}

func (s *LocalUploader) resolve(key string) string {
	return filepath.Join(s.baseDir, filepath.FromSlash(key))
}
