package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Object is a media payload handed to an Uploader.
type Object struct {
	Key         string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Uploader stores media objects and returns their public URL.
type Uploader interface {
	Upload(ctx context.Context, obj Object) (string, error)
	Delete(ctx context.Context, url string) error
}

// ObjectKey builds a collision-free key such as "reports/2024/05/<uuid>.jpg".
func ObjectKey(prefix, extension string, now time.Time) string {
	ext := strings.TrimPrefix(strings.ToLower(extension), ".")
	name := uuid.NewString()
	if ext != "" {
		name = fmt.Sprintf("%s.%s", name, ext)
	}
	return path.Join(strings.Trim(prefix, "/"), now.UTC().Format("2006/01"), name)
}

// keyFromURL strips the public base from a URL produced by Upload.
func keyFromURL(publicURL, url string) (string, bool) {
	base := strings.TrimRight(publicURL, "/") + "/"
	if !strings.HasPrefix(url, base) {
		return "", false
	}
	key := strings.TrimPrefix(url, base)
	if key == "" || strings.Contains(key, "..") {
		return "", false
	}
	return key, true
}
