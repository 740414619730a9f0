package storage

import (
	"context"
	"errors"
	"io"
	"mime"
	"path/filepath"
	"time"
)

// ErrObjectNotFound is returned by Open when no object has the given name.
var ErrObjectNotFound = errors.New("object not found")

// ObjectInfo describes a stored prescription image.
type ObjectInfo struct {
	Name        string
	Size        int64
	ContentType string
	ModTime     time.Time
}

// Store persists prescription images by flat object name. Saving an
// existing name overwrites it.
type Store interface {
	Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) error
	Open(ctx context.Context, name string) (io.ReadCloser, *ObjectInfo, error)
}

func contentTypeFor(name string) string {
	if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
