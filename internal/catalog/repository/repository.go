// Package repository persists catalog aggregates with GORM. Saving an aggregate
// writes its children and prunes the children it no longer owns, in one transaction.
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/narwhalmedia/catalog/internal/catalog/domain"
	pkgerrors "github.com/narwhalmedia/catalog/pkg/errors"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
	"github.com/narwhalmedia/catalog/pkg/repository"
)

const positionOrder = "position, id"

// Schema describes how one aggregate is loaded and written.
type Schema[PT any] struct {
	// Name is used in error messages.
	Name string
	// Preloads load the owned children and references.
	Preloads []repository.Scope
	// Prune removes persisted children the aggregate no longer holds.
	Prune func(ctx context.Context, tx *gorm.DB, aggregate PT) error
	// Children writes owned children and references after the root row.
	Children func(ctx context.Context, tx *gorm.DB, aggregate PT) error
	// Cascade removes everything owned by the aggregates with the given ids.
	Cascade func(ctx context.Context, tx *gorm.DB, ids []int) error
}

// GormRepository stores aggregates of type T. PT is *T.
type GormRepository[T any, PT interface {
	*T
	domain.Record[PT]
}] struct {
	db     *gorm.DB
	schema Schema[PT]
}

var _ interfaces.Repository[*domain.Movie] = (*GormRepository[domain.Movie, *domain.Movie])(nil)

// NewGormRepository creates a repository for the given schema.
func NewGormRepository[T any, PT interface {
	*T
	domain.Record[PT]
}](db *gorm.DB, schema Schema[PT]) *GormRepository[T, PT] {
	return &GormRepository[T, PT]{db: db, schema: schema}
}

// FindAll returns every aggregate ordered by position, then id.
func (r *GormRepository[T, PT]) FindAll(ctx context.Context) ([]PT, error) {
	rows, err := repository.List[T](ctx, r.db, positionOrder, r.schema.Preloads...)
	if err != nil {
		return nil, pkgerrors.Internal(fmt.Sprintf("failed to list %s", r.schema.Name), err)
	}

	out := make([]PT, len(rows))
	for i, row := range rows {
		out[i] = PT(row)
	}
	return out, nil
}

// FindByID returns the aggregate with id.
func (r *GormRepository[T, PT]) FindByID(ctx context.Context, id int) (PT, error) {
	row, err := repository.FindByID[T](ctx, r.db, id, r.schema.Preloads...)
	if err != nil {
		if pkgerrors.IsNotFound(err) {
			return nil, pkgerrors.NotFoundf("%s %d not found", r.schema.Name, id)
		}
		return nil, err
	}
	return PT(row), nil
}

// Save writes the aggregate and its children. New rows get their ids assigned.
func (r *GormRepository[T, PT]) Save(ctx context.Context, aggregate PT) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return r.save(ctx, tx, aggregate)
	})
}

// SaveAll writes several aggregates in one transaction.
func (r *GormRepository[T, PT]) SaveAll(ctx context.Context, aggregates []PT) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, aggregate := range aggregates {
			if err := r.save(ctx, tx, aggregate); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *GormRepository[T, PT]) save(ctx context.Context, tx *gorm.DB, aggregate PT) error {
	if aggregate.GetID() != 0 && r.schema.Prune != nil {
		if err := r.schema.Prune(ctx, tx, aggregate); err != nil {
			return pkgerrors.FromDatabase(err, r.schema.Name)
		}
	}

	if err := repository.Save[T](ctx, tx, (*T)(aggregate)); err != nil {
		return err
	}

	if r.schema.Children != nil {
		if err := r.schema.Children(ctx, tx, aggregate); err != nil {
			return pkgerrors.FromDatabase(err, r.schema.Name)
		}
	}
	return nil
}

// Delete removes the aggregate with id and everything it owns.
func (r *GormRepository[T, PT]) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if r.schema.Cascade != nil {
			if err := r.schema.Cascade(ctx, tx, []int{id}); err != nil {
				return pkgerrors.FromDatabase(err, r.schema.Name)
			}
		}
		if err := repository.Delete[T](ctx, tx, id); err != nil {
			if pkgerrors.IsNotFound(err) {
				return pkgerrors.NotFoundf("%s %d not found", r.schema.Name, id)
			}
			return pkgerrors.FromDatabase(err, r.schema.Name)
		}
		return nil
	})
}

// DeleteAll removes every aggregate and everything they own.
func (r *GormRepository[T, PT]) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if r.schema.Cascade != nil {
			var model T
			var ids []int
			if err := tx.Model(&model).Pluck("id", &ids).Error; err != nil {
				return pkgerrors.FromDatabase(err, r.schema.Name)
			}
			if len(ids) > 0 {
				if err := r.schema.Cascade(ctx, tx, ids); err != nil {
					return pkgerrors.FromDatabase(err, r.schema.Name)
				}
			}
		}
		if err := repository.DeleteAll[T](ctx, tx); err != nil {
			return pkgerrors.FromDatabase(err, r.schema.Name)
		}
		return nil
	})
}

// Count returns the number of stored aggregates.
func (r *GormRepository[T, PT]) Count(ctx context.Context) (int64, error) {
	return repository.Count[T](ctx, r.db)
}

func ids[E domain.Movable](items []E) []int {
	out := make([]int, 0, len(items))
	for _, item := range items {
		if id := item.GetID(); id != 0 {
			out = append(out, id)
		}
	}
	return out
}

func saveGenres[T any](tx *gorm.DB, owner *T, genres []*domain.Genre) error {
	association := tx.Model(owner).Association("Genres")
	if len(genres) == 0 {
		return association.Clear()
	}
	return association.Replace(genres)
}
