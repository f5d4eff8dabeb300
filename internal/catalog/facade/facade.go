// Package facade exposes the catalog operations. Every operation validates its
// input, delegates to a service and maps the outcome to a result.
//
// Validation failures are events of the returned result. Errors are returned
// only for infrastructure failures.
package facade

import (
	"context"

	"github.com/narwhalmedia/catalog/internal/catalog/domain"
	"github.com/narwhalmedia/catalog/internal/catalog/entity"
	"github.com/narwhalmedia/catalog/internal/catalog/mapper"
	"github.com/narwhalmedia/catalog/internal/catalog/validator"
	pkgerrors "github.com/narwhalmedia/catalog/pkg/errors"
	"github.com/narwhalmedia/catalog/pkg/result"
)

// ParentService manages an ordered collection of aggregates.
type ParentService[D domain.Record[D]] interface {
	NewData(ctx context.Context) error
	GetAll(ctx context.Context) ([]D, error)
	Get(ctx context.Context, id int) (D, error)
	Add(ctx context.Context, item D) (D, error)
	Update(ctx context.Context, item D) error
	Remove(ctx context.Context, id int) error
	Duplicate(ctx context.Context, id int) (D, error)
	MoveUp(ctx context.Context, id int) error
	MoveDown(ctx context.Context, id int) error
	UpdatePositions(ctx context.Context) error
}

// UpdateHook copies into updated what the entity does not carry, such as owned children.
type UpdateHook[D domain.Record[D]] func(stored, updated D)

// ParentFacade exposes the operations of one aggregate kind.
type ParentFacade[E entity.Record, D domain.Record[D]] struct {
	service   ParentService[D]
	validator validator.Validator[E]
	mapper    mapper.Mapper[E, D]
	hook      UpdateHook[D]
}

// NewParentFacade creates a facade. The hook may be nil.
func NewParentFacade[E entity.Record, D domain.Record[D]](
	service ParentService[D],
	validator validator.Validator[E],
	mapper mapper.Mapper[E, D],
	hook UpdateHook[D],
) *ParentFacade[E, D] {
	return &ParentFacade[E, D]{service: service, validator: validator, mapper: mapper, hook: hook}
}

// NewData removes every record.
func (f *ParentFacade[E, D]) NewData(ctx context.Context) (*result.Result[result.Void], error) {
	if err := f.service.NewData(ctx); err != nil {
		return nil, err
	}
	return result.New[result.Void](), nil
}

// GetAll returns every record in order.
func (f *ParentFacade[E, D]) GetAll(ctx context.Context) (*result.Result[[]E], error) {
	items, err := f.service.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return result.Of(mapper.ToEntities(f.mapper, items)), nil
}

// Get returns the record with id. A missing record gives an OK result without data.
func (f *ParentFacade[E, D]) Get(ctx context.Context, id int) (*result.Result[E], error) {
	item, err := f.service.Get(ctx, id)
	if err != nil {
		if pkgerrors.IsNotFound(err) {
			return result.New[E](), nil
		}
		return nil, err
	}
	return result.Of(f.mapper.ToEntity(item)), nil
}

// Add stores a new record after all existing ones.
func (f *ParentFacade[E, D]) Add(ctx context.Context, data E) (*result.Result[result.Void], error) {
	r, err := f.validator.Validate(ctx, data, validator.TypeNew, validator.TypeDeep)
	if err != nil || r.IsError() {
		return r, err
	}
	if _, err := f.service.Add(ctx, f.mapper.ToDomain(data)); err != nil {
		return nil, err
	}
	return r, nil
}

// Update replaces a stored record.
func (f *ParentFacade[E, D]) Update(ctx context.Context, data E) (*result.Result[result.Void], error) {
	r, err := f.validator.Validate(ctx, data, validator.TypeExists, validator.TypeDeep)
	if err != nil || r.IsError() {
		return r, err
	}

	stored, err := f.service.Get(ctx, *data.GetID())
	if err != nil {
		return nil, err
	}
	updated := f.mapper.ToDomain(data)
	if data.GetPosition() == nil {
		updated.SetPosition(stored.GetPosition())
	}
	if f.hook != nil {
		f.hook(stored, updated)
	}

	if err := f.service.Update(ctx, updated); err != nil {
		return nil, err
	}
	return r, nil
}

// Remove deletes a stored record.
func (f *ParentFacade[E, D]) Remove(ctx context.Context, data E) (*result.Result[result.Void], error) {
	return f.apply(ctx, data, f.service.Remove, validator.TypeExists)
}

// Duplicate stores a copy of a stored record after all existing ones.
func (f *ParentFacade[E, D]) Duplicate(ctx context.Context, data E) (*result.Result[result.Void], error) {
	return f.apply(ctx, data, func(ctx context.Context, id int) error {
		_, err := f.service.Duplicate(ctx, id)
		return err
	}, validator.TypeExists)
}

// MoveUp swaps a record with its preceding sibling.
func (f *ParentFacade[E, D]) MoveUp(ctx context.Context, data E) (*result.Result[result.Void], error) {
	return f.apply(ctx, data, f.service.MoveUp, validator.TypeExists, validator.TypeUp)
}

// MoveDown swaps a record with its following sibling.
func (f *ParentFacade[E, D]) MoveDown(ctx context.Context, data E) (*result.Result[result.Void], error) {
	return f.apply(ctx, data, f.service.MoveDown, validator.TypeExists, validator.TypeDown)
}

// UpdatePositions renumbers every record and its children.
func (f *ParentFacade[E, D]) UpdatePositions(ctx context.Context) (*result.Result[result.Void], error) {
	if err := f.service.UpdatePositions(ctx); err != nil {
		return nil, err
	}
	return result.New[result.Void](), nil
}

func (f *ParentFacade[E, D]) apply(ctx context.Context, data E, op func(context.Context, int) error, types ...validator.Type) (*result.Result[result.Void], error) {
	return apply(ctx, f.validator, data, op, types...)
}

// apply validates data and runs op with its id when no error was found.
func apply[E entity.Record](ctx context.Context, v validator.Validator[E], data E, op func(context.Context, int) error, types ...validator.Type) (*result.Result[result.Void], error) {
	r, err := v.Validate(ctx, data, types...)
	if err != nil || r.IsError() {
		return r, err
	}
	if err := op(ctx, *data.GetID()); err != nil {
		return nil, err
	}
	return r, nil
}
