// Package validator checks catalog records before they reach the services.
// Failures are reported as result events; only infrastructure failures are errors.
package validator

import (
	"context"
	"strings"

	"github.com/narwhalmedia/catalog/internal/catalog/domain"
	"github.com/narwhalmedia/catalog/internal/catalog/entity"
	"github.com/narwhalmedia/catalog/internal/catalog/movable"
	pkgerrors "github.com/narwhalmedia/catalog/pkg/errors"
	"github.com/narwhalmedia/catalog/pkg/result"
)

// Type selects a group of checks.
type Type int

const (
	// TypeNew checks that the record has no identity and no position yet.
	TypeNew Type = iota
	// TypeExists checks that the record has an identity and is stored.
	TypeExists
	// TypeUp checks that the stored record has a preceding sibling.
	TypeUp
	// TypeDown checks that the stored record has a following sibling.
	TypeDown
	// TypeDeep checks the fields of the record.
	TypeDeep
)

// Source looks up stored records. Get reports a missing record with a NOT_FOUND error.
type Source[D domain.Movable] interface {
	Get(ctx context.Context, id int) (D, error)
	Siblings(ctx context.Context, id int) ([]D, error)
}

// Validator validates one kind of record.
type Validator[E entity.Record] interface {
	Validate(ctx context.Context, data E, types ...Type) (*result.Result[result.Void], error)
}

// DeepFunc adds the events of the field checks of data to r.
type DeepFunc[E entity.Record] func(ctx context.Context, data E, r *result.Result[result.Void]) error

// MovableValidator runs the common checks of ordered records and the deep checks of its kind.
type MovableValidator[E entity.Record, D domain.Movable] struct {
	name   string
	prefix string
	source Source[D]
	deep   DeepFunc[E]
}

// NewMovableValidator creates a validator. Name is used in messages, prefix in event keys.
func NewMovableValidator[E entity.Record, D domain.Movable](name, prefix string, source Source[D], deep DeepFunc[E]) *MovableValidator[E, D] {
	return &MovableValidator[E, D]{name: name, prefix: prefix, source: source, deep: deep}
}

// Validate runs the selected checks. A nil record yields the null event only.
func (v *MovableValidator[E, D]) Validate(ctx context.Context, data E, types ...Type) (*result.Result[result.Void], error) {
	r := result.New[result.Void]()
	var zero E
	if data == zero {
		r.AddEvent(result.ErrorEvent(v.prefix+"_NULL", v.name+" mustn't be null."))
		return r, nil
	}

	if has(types, TypeNew) {
		v.validateNew(data, r)
	}

	exists := false
	if has(types, TypeExists) {
		var err error
		if exists, err = v.validateExists(ctx, data, r); err != nil {
			return nil, err
		}
	}

	if has(types, TypeDeep) && v.deep != nil {
		if err := v.deep(ctx, data, r); err != nil {
			return nil, err
		}
	}

	if exists && (has(types, TypeUp) || has(types, TypeDown)) {
		if err := v.validateMoving(ctx, *data.GetID(), has(types, TypeUp), r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (v *MovableValidator[E, D]) validateNew(data E, r *result.Result[result.Void]) {
	if data.GetID() != nil {
		r.AddEvent(result.ErrorEvent(v.prefix+"_ID_NOT_NULL", "ID must be null."))
	}
	if data.GetPosition() != nil {
		r.AddEvent(result.ErrorEvent(v.prefix+"_POSITION_NOT_NULL", "Position must be null."))
	}
}

func (v *MovableValidator[E, D]) validateExists(ctx context.Context, data E, r *result.Result[result.Void]) (bool, error) {
	id := data.GetID()
	if id == nil {
		r.AddEvent(result.ErrorEvent(v.prefix+"_ID_NULL", "ID mustn't be null."))
		return false, nil
	}
	if _, err := v.source.Get(ctx, *id); err != nil {
		if pkgerrors.IsNotFound(err) {
			r.AddEvent(result.ErrorEvent(v.prefix+"_NOT_EXIST", v.name+" doesn't exist."))
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (v *MovableValidator[E, D]) validateMoving(ctx context.Context, id int, up bool, r *result.Result[result.Void]) error {
	siblings, err := v.source.Siblings(ctx, id)
	if err != nil {
		return err
	}
	if up && !movable.CanMoveUp(siblings, id) {
		r.AddEvent(result.ErrorEvent(v.prefix+"_NOT_MOVABLE", v.name+" can't be moved up."))
	}
	if !up && !movable.CanMoveDown(siblings, id) {
		r.AddEvent(result.ErrorEvent(v.prefix+"_NOT_MOVABLE", v.name+" can't be moved down."))
	}
	return nil
}

func has(types []Type, t Type) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}

// text checks a required text field: KEY_NULL when missing, KEY_EMPTY when blank.
func text(r *result.Result[result.Void], value *string, key, name string) {
	switch {
	case value == nil:
		r.AddEvent(result.ErrorEvent(key+"_NULL", name+" mustn't be null."))
	case strings.TrimSpace(*value) == "":
		r.AddEvent(result.ErrorEvent(key+"_EMPTY", name+" mustn't be empty string."))
	}
}

func check(r *result.Result[result.Void], ok bool, key, message string) {
	if !ok {
		r.AddEvent(result.ErrorEvent(key, message))
	}
}

func containsNil[T any](values []*T) bool {
	for _, value := range values {
		if value == nil {
			return true
		}
	}
	return false
}
