package repository

import (
	"context"

	pkgerrors "github.com/narwhalmedia/catalog/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Scope narrows or extends a query, e.g. with preloads or ordering.
type Scope = func(*gorm.DB) *gorm.DB

// Preload returns a scope preloading an association ordered by the given columns.
func Preload(association string, order string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if order == "" {
			return db.Preload(association)
		}
		return db.Preload(association, func(tx *gorm.DB) *gorm.DB {
			return tx.Order(order)
		})
	}
}

// Save inserts entity when its primary key is zero and updates every column otherwise.
// Associations are left alone, callers persist those explicitly.
func Save[T any](ctx context.Context, db *gorm.DB, entity *T) error {
	if err := db.WithContext(ctx).Omit(clause.Associations).Save(entity).Error; err != nil {
		return pkgerrors.FromDatabase(err, "entity")
	}
	return nil
}

// FindByID finds an entity by its ID and applies the given scopes.
func FindByID[T any](ctx context.Context, db *gorm.DB, id int, scopes ...Scope) (*T, error) {
	var entity T
	if err := db.WithContext(ctx).Scopes(scopes...).First(&entity, "id = ?", id).Error; err != nil {
		return nil, pkgerrors.FromDatabase(err, "entity")
	}
	return &entity, nil
}

// List retrieves all entities in the given order and applies the given scopes.
func List[T any](ctx context.Context, db *gorm.DB, order string, scopes ...Scope) ([]*T, error) {
	var entities []*T
	query := db.WithContext(ctx).Scopes(scopes...)
	if order != "" {
		query = query.Order(order)
	}
	if err := query.Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// Delete removes an entity from the database by its ID.
func Delete[T any](ctx context.Context, db *gorm.DB, id int) error {
	var entity T
	result := db.WithContext(ctx).Delete(&entity, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.NotFound("entity not found for deletion")
	}
	return nil
}

// DeleteAll removes every entity of type T.
func DeleteAll[T any](ctx context.Context, db *gorm.DB) error {
	var entity T
	return db.WithContext(ctx).Where("1 = 1").Delete(&entity).Error
}

// Count returns the total number of entities.
func Count[T any](ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	var entity T
	if err := db.WithContext(ctx).Model(&entity).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// StaleIDs returns the ids of the rows of T owned by parentID through foreignKey
// whose id is not in keep.
func StaleIDs[T any](ctx context.Context, db *gorm.DB, foreignKey string, parentID int, keep []int) ([]int, error) {
	var model T
	query := db.WithContext(ctx).Model(&model).Where(foreignKey+" = ?", parentID)
	if len(keep) > 0 {
		query = query.Where("id NOT IN ?", keep)
	}

	var stale []int
	if err := query.Pluck("id", &stale).Error; err != nil {
		return nil, err
	}
	return stale, nil
}

// PruneChildren deletes the rows of T owned by parentID through foreignKey
// whose id is not in keep. It returns the ids of the deleted rows.
func PruneChildren[T any](ctx context.Context, db *gorm.DB, foreignKey string, parentID int, keep []int) ([]int, error) {
	stale, err := StaleIDs[T](ctx, db, foreignKey, parentID, keep)
	if err != nil || len(stale) == 0 {
		return nil, err
	}
	if err := DeleteWhereIn[T](ctx, db, "id", stale); err != nil {
		return nil, err
	}
	return stale, nil
}

// DeleteWhereIn deletes the rows of T whose column holds one of values.
func DeleteWhereIn[T any](ctx context.Context, db *gorm.DB, column string, values []int) error {
	if len(values) == 0 {
		return nil
	}
	var model T
	return db.WithContext(ctx).Where(column+" IN ?", values).Delete(&model).Error
}

// PluckIDs returns the ids of rows of T whose column holds one of values.
func PluckIDs[T any](ctx context.Context, db *gorm.DB, column string, values []int) ([]int, error) {
	if len(values) == 0 {
		return nil, nil
	}
	var model T
	var out []int
	err := db.WithContext(ctx).Model(&model).Where(column+" IN ?", values).Pluck("id", &out).Error
	return out, err
}
