package interfaces

import (
	"context"
	"time"
)

// Cache keeps the ordered lists read by the catalog services.
// Get reports a miss with an error; callers fall back to the repository.
type Cache interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Exists(ctx context.Context, key string) (bool, error)

	// Delete evicts one key, DeletePrefix every key starting with prefix.
	Delete(ctx context.Context, key string) error
	DeletePrefix(ctx context.Context, prefix string) error
	Clear(ctx context.Context) error
}
