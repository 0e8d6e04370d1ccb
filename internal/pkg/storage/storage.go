package storage

import (
	"context"
	"io"
)

// Storage is the blob backend for profile images. Only the object key is
// persisted on the account record; the backend owns URL resolution.
type Storage interface {
	// Put stores an object under key.
	Put(ctx context.Context, key string, reader io.Reader, contentType string) error

	// Get retrieves an object by key.
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes an object. Returns nil if it does not exist.
	Delete(ctx context.Context, key string) error

	// GetURL returns the public URL for an object key.
	GetURL(key string) string
}
