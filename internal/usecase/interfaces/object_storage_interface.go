package interfaces

import (
	"context"
	"errors"
	"io"
	"time"
)

var ErrObjectNotFound = errors.New("object not found")

// IObjectStorage stores file contents under a key. Reads go through signed URLs.
type IObjectStorage interface {
	Put(ctx context.Context, key string, contentType string, body io.Reader, size int64) error
	Delete(ctx context.Context, key string) error
	SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}
