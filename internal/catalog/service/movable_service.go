// Package service implements catalog operations over ordered collections of
// aggregates and of their children.
package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/narwhalmedia/catalog/internal/catalog/domain"
	"github.com/narwhalmedia/catalog/internal/catalog/movable"
	pkgerrors "github.com/narwhalmedia/catalog/pkg/errors"
	"github.com/narwhalmedia/catalog/pkg/events"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

// DefaultCacheTTL is how long the ordered list of a kind stays cached.
const DefaultCacheTTL = 5 * time.Minute

// Event actions.
const (
	ActionCreated      = "created"
	ActionUpdated      = "updated"
	ActionRemoved      = "removed"
	ActionDuplicated   = "duplicated"
	ActionMoved        = "moved"
	ActionRepositioned = "repositioned"
	ActionCleared      = "cleared"
)

// EventType returns the type of catalog change events, e.g. catalog.movie.created.
func EventType(name, action string) string {
	return "catalog." + name + "." + action
}

// MovableService manages the ordered collection of one aggregate kind.
// Records handed out are copies, callers may change them freely.
type MovableService[E domain.Record[E]] struct {
	name     string
	repo     interfaces.Repository[E]
	eventBus interfaces.EventBus
	cache    interfaces.Cache
	logger   interfaces.Logger
	cacheTTL time.Duration

	// kinds whose cached views embed records of this kind
	dependents []string
}

// NewMovableService creates a service for the aggregate kind called name.
func NewMovableService[E domain.Record[E]](
	name string,
	repo interfaces.Repository[E],
	eventBus interfaces.EventBus,
	cache interfaces.Cache,
	logger interfaces.Logger,
) *MovableService[E] {
	return &MovableService[E]{
		name:     name,
		repo:     repo,
		eventBus: eventBus,
		cache:    cache,
		logger:   logger.WithFields(interfaces.String("service", name)),
		cacheTTL: DefaultCacheTTL,
	}
}

// WithCacheTTL sets how long the ordered list stays cached.
func (s *MovableService[E]) WithCacheTTL(ttl time.Duration) *MovableService[E] {
	s.cacheTTL = ttl
	return s
}

// WithDependents names the kinds whose cached views are dropped together with
// this kind's, e.g. movies referencing genres.
func (s *MovableService[E]) WithDependents(names ...string) *MovableService[E] {
	s.dependents = append(s.dependents, names...)
	return s
}

// Name returns the aggregate kind.
func (s *MovableService[E]) Name() string {
	return s.name
}

// NewData removes every record.
func (s *MovableService[E]) NewData(ctx context.Context) error {
	if err := s.repo.DeleteAll(ctx); err != nil {
		s.logger.Error("Failed to clear data", interfaces.Error(err))
		return err
	}
	s.invalidate(ctx)
	s.publish(ctx, ActionCleared, 0, nil)
	return nil
}

// GetAll returns every record ordered by position, then id.
func (s *MovableService[E]) GetAll(ctx context.Context) ([]E, error) {
	items, err := s.list(ctx)
	if err != nil {
		return nil, err
	}
	return clone(items), nil
}

// Get returns the record with id, a NOT_FOUND error when there is none.
func (s *MovableService[E]) Get(ctx context.Context, id int) (E, error) {
	var zero E
	items, err := s.list(ctx)
	if err != nil {
		return zero, err
	}
	item, ok := movable.Find(items, id)
	if !ok {
		return zero, pkgerrors.NotFoundf("%s %d not found", s.name, id)
	}
	return item.Clone(), nil
}

// Siblings returns every record, the siblings of id included.
func (s *MovableService[E]) Siblings(ctx context.Context, id int) ([]E, error) {
	return s.GetAll(ctx)
}

// Add stores a new record after all existing ones.
func (s *MovableService[E]) Add(ctx context.Context, item E) (E, error) {
	items, err := s.list(ctx)
	if err != nil {
		return item, err
	}
	item.SetPosition(movable.NextPosition(items))

	if err := s.save(ctx, item); err != nil {
		return item, err
	}

	s.logger.Info("Record created", interfaces.Int("id", item.GetID()))
	s.publish(ctx, ActionCreated, item.GetID(), nil)
	return item, nil
}

// Update stores changes of an existing record.
func (s *MovableService[E]) Update(ctx context.Context, item E) error {
	if _, err := s.Get(ctx, item.GetID()); err != nil {
		return err
	}
	if err := s.save(ctx, item); err != nil {
		return err
	}

	s.logger.Info("Record updated", interfaces.Int("id", item.GetID()))
	s.publish(ctx, ActionUpdated, item.GetID(), nil)
	return nil
}

// Remove deletes the record with id and everything it owns.
func (s *MovableService[E]) Remove(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if !pkgerrors.IsNotFound(err) {
			s.logger.Error("Failed to remove record", interfaces.Int("id", id), interfaces.Error(err))
		}
		return err
	}
	s.invalidate(ctx)

	s.logger.Info("Record removed", interfaces.Int("id", id))
	s.publish(ctx, ActionRemoved, id, nil)
	return nil
}

// Duplicate stores a deep copy of the record with id after all existing ones.
func (s *MovableService[E]) Duplicate(ctx context.Context, id int) (E, error) {
	original, err := s.Get(ctx, id)
	if err != nil {
		return original, err
	}
	original.Detach()

	duplicate, err := s.Add(ctx, original)
	if err != nil {
		return duplicate, err
	}
	s.publish(ctx, ActionDuplicated, duplicate.GetID(), map[string]interface{}{"source": id})
	return duplicate, nil
}

// MoveUp swaps the record with id and its preceding sibling.
func (s *MovableService[E]) MoveUp(ctx context.Context, id int) error {
	return s.move(ctx, id, "up", movable.MoveUp[E])
}

// MoveDown swaps the record with id and its following sibling.
func (s *MovableService[E]) MoveDown(ctx context.Context, id int) error {
	return s.move(ctx, id, "down", movable.MoveDown[E])
}

func (s *MovableService[E]) move(ctx context.Context, id int, direction string, swap func([]E, int) []E) error {
	items, err := s.GetAll(ctx)
	if err != nil {
		return err
	}
	changed := swap(items, id)
	if changed == nil {
		return pkgerrors.BadRequest(fmt.Sprintf("%s %d can't be moved %s", s.name, id, direction))
	}

	if err := s.repo.SaveAll(ctx, changed); err != nil {
		s.logger.Error("Failed to move record", interfaces.Int("id", id), interfaces.Error(err))
		return err
	}
	s.invalidate(ctx)

	s.publish(ctx, ActionMoved, id, map[string]interface{}{"direction": direction})
	return nil
}

// UpdatePositions renumbers all records and their children to 0..n-1.
func (s *MovableService[E]) UpdatePositions(ctx context.Context) error {
	items, err := s.GetAll(ctx)
	if err != nil {
		return err
	}
	movable.Renumber(items)
	for _, item := range items {
		item.Renumber()
	}

	if err := s.repo.SaveAll(ctx, items); err != nil {
		s.logger.Error("Failed to update positions", interfaces.Error(err))
		return err
	}
	s.invalidate(ctx)

	s.publish(ctx, ActionRepositioned, 0, map[string]interface{}{"count": len(items)})
	return nil
}

// save writes the record and drops the cached list, without publishing.
func (s *MovableService[E]) save(ctx context.Context, item E) error {
	if err := s.repo.Save(ctx, item); err != nil {
		s.logger.Error("Failed to save record", interfaces.Int("id", item.GetID()), interfaces.Error(err))
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *MovableService[E]) list(ctx context.Context) ([]E, error) {
	if cached, err := s.cache.Get(ctx, s.cacheKey()); err == nil {
		if items, ok := cached.([]E); ok {
			return items, nil
		}
	}

	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	movable.Sort(items)

	if err := s.cache.Set(ctx, s.cacheKey(), items, s.cacheTTL); err != nil {
		s.logger.Warn("Failed to cache records", interfaces.Error(err))
	}
	return items, nil
}

// invalidate drops every cached view of the kind and of its dependents.
func (s *MovableService[E]) invalidate(ctx context.Context) {
	prefixes := []string{cachePrefix(s.name)}
	for _, name := range s.dependents {
		prefixes = append(prefixes, cachePrefix(name))
	}
	for _, prefix := range prefixes {
		if err := s.cache.DeletePrefix(ctx, prefix); err != nil {
			s.logger.Warn("Failed to invalidate cache", interfaces.String("prefix", prefix), interfaces.Error(err))
		}
	}
}

func cachePrefix(name string) string {
	return "catalog:" + name + ":"
}

func (s *MovableService[E]) cacheKey() string {
	return cachePrefix(s.name) + "all"
}

func (s *MovableService[E]) publish(ctx context.Context, action string, id int, data map[string]interface{}) {
	publish(ctx, s.eventBus, s.name, action, id, data)
}

func publish(ctx context.Context, bus interfaces.EventBus, name, action string, id int, data map[string]interface{}) {
	if bus == nil {
		return
	}
	aggregateID := ""
	if id != 0 {
		aggregateID = strconv.Itoa(id)
	}
	bus.PublishAsync(ctx, events.NewAggregateEvent(EventType(name, action), aggregateID, data))
}

func clone[E domain.Record[E]](items []E) []E {
	out := make([]E, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}
