package interfaces

import (
	"context"
)

// Repository defines the persistence contract of one catalog aggregate.
// E is a pointer type; a missing record is reported with a NOT_FOUND AppError.
type Repository[E any] interface {
	// FindAll returns every stored aggregate with its children loaded
	FindAll(ctx context.Context) ([]E, error)

	// FindByID retrieves an aggregate by ID
	FindByID(ctx context.Context, id int) (E, error)

	// Save inserts or updates an aggregate together with its children
	Save(ctx context.Context, entity E) error

	// SaveAll saves several aggregates in one transaction
	SaveAll(ctx context.Context, entities []E) error

	// Delete removes an aggregate and everything it owns
	Delete(ctx context.Context, id int) error

	// DeleteAll removes every aggregate of this kind
	DeleteAll(ctx context.Context) error
}
