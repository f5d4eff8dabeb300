package service

import (
	"context"
	"fmt"

	"github.com/narwhalmedia/catalog/internal/catalog/domain"
	"github.com/narwhalmedia/catalog/internal/catalog/movable"
	pkgerrors "github.com/narwhalmedia/catalog/pkg/errors"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

// ChildService manages children owned by a parent aggregate. Every change is
// persisted by saving the root aggregate.
type ChildService[C domain.Record[C]] struct {
	name      string
	hierarchy Hierarchy[C]
	eventBus  interfaces.EventBus
	logger    interfaces.Logger
}

// NewChildService creates a service for the child kind called name.
func NewChildService[C domain.Record[C]](
	name string,
	hierarchy Hierarchy[C],
	eventBus interfaces.EventBus,
	logger interfaces.Logger,
) *ChildService[C] {
	return &ChildService[C]{
		name:      name,
		hierarchy: hierarchy,
		eventBus:  eventBus,
		logger:    logger.WithFields(interfaces.String("service", name)),
	}
}

// Name returns the child kind.
func (s *ChildService[C]) Name() string {
	return s.name
}

// Get returns the child with id, a NOT_FOUND error when there is none.
func (s *ChildService[C]) Get(ctx context.Context, id int) (C, error) {
	var zero C
	family, err := s.hierarchy.ByChild(ctx, id)
	if err != nil {
		return zero, err
	}
	child, _ := family.Find(id)
	return child, nil
}

// Siblings returns the children of the parent holding id, id included.
func (s *ChildService[C]) Siblings(ctx context.Context, id int) ([]C, error) {
	family, err := s.hierarchy.ByChild(ctx, id)
	if err != nil {
		return nil, err
	}
	return movable.Sorted(family.Children()), nil
}

// Find returns the children of the parent with parentID ordered by position, then id.
func (s *ChildService[C]) Find(ctx context.Context, parentID int) ([]C, error) {
	family, err := s.hierarchy.ByParent(ctx, parentID)
	if err != nil {
		return nil, err
	}
	return movable.Sorted(family.Children()), nil
}

// Add appends child to the children of the parent with parentID.
func (s *ChildService[C]) Add(ctx context.Context, parentID int, child C) (C, error) {
	family, err := s.hierarchy.ByParent(ctx, parentID)
	if err != nil {
		return child, err
	}
	family.Set(movable.Append(family.Children(), child))
	if err := s.commit(ctx, family); err != nil {
		return child, err
	}

	s.logger.Info("Child created", interfaces.Int("id", child.GetID()), interfaces.Int("parent_id", parentID))
	s.publish(ctx, ActionCreated, child.GetID(), parentID)
	return child, nil
}

// Update replaces the stored child having the id of child.
func (s *ChildService[C]) Update(ctx context.Context, child C) error {
	family, err := s.hierarchy.ByChild(ctx, child.GetID())
	if err != nil {
		return err
	}
	children := family.Children()
	movable.Replace(children, child)
	family.Set(children)
	if err := s.commit(ctx, family); err != nil {
		return err
	}

	s.logger.Info("Child updated", interfaces.Int("id", child.GetID()))
	s.publish(ctx, ActionUpdated, child.GetID(), family.ParentID)
	return nil
}

// Remove deletes the child with id and everything it owns.
func (s *ChildService[C]) Remove(ctx context.Context, id int) error {
	family, err := s.hierarchy.ByChild(ctx, id)
	if err != nil {
		return err
	}
	children, _ := movable.Remove(family.Children(), id)
	family.Set(children)
	if err := s.commit(ctx, family); err != nil {
		return err
	}

	s.logger.Info("Child removed", interfaces.Int("id", id))
	s.publish(ctx, ActionRemoved, id, family.ParentID)
	return nil
}

// Duplicate appends a deep copy of the child with id to its parent.
func (s *ChildService[C]) Duplicate(ctx context.Context, id int) (C, error) {
	var zero C
	family, err := s.hierarchy.ByChild(ctx, id)
	if err != nil {
		return zero, err
	}
	original, _ := family.Find(id)
	duplicate := original.Clone()
	duplicate.Detach()

	family.Set(movable.Append(family.Children(), duplicate))
	if err := s.commit(ctx, family); err != nil {
		return zero, err
	}

	s.publish(ctx, ActionDuplicated, duplicate.GetID(), family.ParentID)
	return duplicate, nil
}

// MoveUp swaps the child with id and its preceding sibling.
func (s *ChildService[C]) MoveUp(ctx context.Context, id int) error {
	return s.move(ctx, id, "up", movable.MoveUp[C])
}

// MoveDown swaps the child with id and its following sibling.
func (s *ChildService[C]) MoveDown(ctx context.Context, id int) error {
	return s.move(ctx, id, "down", movable.MoveDown[C])
}

func (s *ChildService[C]) move(ctx context.Context, id int, direction string, swap func([]C, int) []C) error {
	family, err := s.hierarchy.ByChild(ctx, id)
	if err != nil {
		return err
	}
	children := family.Children()
	if swap(children, id) == nil {
		return pkgerrors.BadRequest(fmt.Sprintf("%s %d can't be moved %s", s.name, id, direction))
	}
	family.Set(children)
	if err := s.commit(ctx, family); err != nil {
		return err
	}

	s.publish(ctx, ActionMoved, id, family.ParentID)
	return nil
}

func (s *ChildService[C]) commit(ctx context.Context, family *Family[C]) error {
	if err := family.Commit(ctx); err != nil {
		s.logger.Error("Failed to save parent", interfaces.Int("parent_id", family.ParentID), interfaces.Error(err))
		return err
	}
	return nil
}

func (s *ChildService[C]) publish(ctx context.Context, action string, id, parentID int) {
	publish(ctx, s.eventBus, s.name, action, id, map[string]interface{}{"parent_id": parentID})
}
