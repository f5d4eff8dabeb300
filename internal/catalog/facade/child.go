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

// ChildService manages children owned by parents.
type ChildService[D domain.Record[D]] interface {
	Get(ctx context.Context, id int) (D, error)
	Find(ctx context.Context, parentID int) ([]D, error)
	Add(ctx context.Context, parentID int, child D) (D, error)
	Update(ctx context.Context, child D) error
	Remove(ctx context.Context, id int) error
	Duplicate(ctx context.Context, id int) (D, error)
	MoveUp(ctx context.Context, id int) error
	MoveDown(ctx context.Context, id int) error
}

// AddGuard checks business rules of adding a child to the parent with parentID.
type AddGuard func(ctx context.Context, parentID int) (*result.Result[result.Void], error)

// ChildFacade exposes the operations of one child kind. P is the parent entity.
type ChildFacade[P entity.Record, E entity.Record, D domain.Record[D]] struct {
	service   ChildService[D]
	parents   validator.Validator[P]
	validator validator.Validator[E]
	mapper    mapper.Mapper[E, D]
	hook      UpdateHook[D]
	guard     AddGuard
}

// NewChildFacade creates a facade. The hook may be nil.
func NewChildFacade[P entity.Record, E entity.Record, D domain.Record[D]](
	service ChildService[D],
	parents validator.Validator[P],
	validator validator.Validator[E],
	mapper mapper.Mapper[E, D],
	hook UpdateHook[D],
) *ChildFacade[P, E, D] {
	return &ChildFacade[P, E, D]{service: service, parents: parents, validator: validator, mapper: mapper, hook: hook}
}

// WithAddGuard sets the rule checked after the parent is found to exist.
func (f *ChildFacade[P, E, D]) WithAddGuard(guard AddGuard) *ChildFacade[P, E, D] {
	f.guard = guard
	return f
}

// Get returns the child with id. A missing child gives an OK result without data.
func (f *ChildFacade[P, E, D]) Get(ctx context.Context, id int) (*result.Result[E], error) {
	child, err := f.service.Get(ctx, id)
	if err != nil {
		if pkgerrors.IsNotFound(err) {
			return result.New[E](), nil
		}
		return nil, err
	}
	return result.Of(f.mapper.ToEntity(child)), nil
}

// Find returns the children of parent in order.
func (f *ChildFacade[P, E, D]) Find(ctx context.Context, parent P) (*result.Result[[]E], error) {
	r, err := f.parents.Validate(ctx, parent, validator.TypeExists)
	if err != nil {
		return nil, err
	}
	if r.IsError() {
		return result.Convert[[]E](r), nil
	}

	children, err := f.service.Find(ctx, *parent.GetID())
	if err != nil {
		return nil, err
	}
	found := result.Of(mapper.ToEntities(f.mapper, children))
	return result.Merge(found, r), nil
}

// Add appends data to the children of parent.
func (f *ChildFacade[P, E, D]) Add(ctx context.Context, parent P, data E) (*result.Result[result.Void], error) {
	r, err := f.parents.Validate(ctx, parent, validator.TypeExists)
	if err != nil {
		return nil, err
	}
	if f.guard != nil && !r.IsError() {
		guarded, err := f.guard(ctx, *parent.GetID())
		if err != nil {
			return nil, err
		}
		result.Merge(r, guarded)
	}

	child, err := f.validator.Validate(ctx, data, validator.TypeNew, validator.TypeDeep)
	if err != nil {
		return nil, err
	}
	result.Merge(r, child)
	if r.IsError() {
		return r, nil
	}

	if _, err := f.service.Add(ctx, *parent.GetID(), f.mapper.ToDomain(data)); err != nil {
		return nil, err
	}
	return r, nil
}

// Update replaces a stored child.
func (f *ChildFacade[P, E, D]) Update(ctx context.Context, data E) (*result.Result[result.Void], error) {
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

// Remove deletes a stored child.
func (f *ChildFacade[P, E, D]) Remove(ctx context.Context, data E) (*result.Result[result.Void], error) {
	return apply(ctx, f.validator, data, f.service.Remove, validator.TypeExists)
}

// Duplicate appends a copy of a stored child to its parent.
func (f *ChildFacade[P, E, D]) Duplicate(ctx context.Context, data E) (*result.Result[result.Void], error) {
	return apply(ctx, f.validator, data, func(ctx context.Context, id int) error {
		_, err := f.service.Duplicate(ctx, id)
		return err
	}, validator.TypeExists)
}

// MoveUp swaps a child with its preceding sibling.
func (f *ChildFacade[P, E, D]) MoveUp(ctx context.Context, data E) (*result.Result[result.Void], error) {
	return apply(ctx, f.validator, data, f.service.MoveUp, validator.TypeExists, validator.TypeUp)
}

// MoveDown swaps a child with its following sibling.
func (f *ChildFacade[P, E, D]) MoveDown(ctx context.Context, data E) (*result.Result[result.Void], error) {
	return apply(ctx, f.validator, data, f.service.MoveDown, validator.TypeExists, validator.TypeDown)
}
