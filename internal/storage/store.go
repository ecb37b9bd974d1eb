package storage

import (
	"context"
	"io"
	"time"

	"consigna/internal/model"
)

// ObjectStore is the interface to the external object store.
// Implementations must be safe for concurrent use.
type ObjectStore interface {
	io.Closer

	// Upload writes the reader's content under key and returns the stored
	// file's identity as assigned by the store.
	Upload(ctx context.Context, key string, r io.Reader, contentType string) (model.StoredFile, error)

	// List returns up to limit objects whose key starts with prefix, in the
	// store's listing order.
	List(ctx context.Context, prefix string, limit int) ([]model.StoredFile, error)

	// Delete removes the object at key.
	Delete(ctx context.Context, key string) error

	// SignedURL returns a time-bounded URL granting read access to key.
	SignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}
