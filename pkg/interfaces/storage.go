package interfaces

import (
	"context"
	"io"
)

// BlobStore keeps binary content outside of the relational store.
type BlobStore interface {
	// Store writes the content under key, replacing any previous content
	Store(ctx context.Context, key string, reader io.Reader) error

	// Retrieve opens the content stored under key
	Retrieve(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes the content stored under key
	Delete(ctx context.Context, key string) error

	// Exists reports whether content is stored under key
	Exists(ctx context.Context, key string) (bool, error)
}
