package service_test

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

// MockRepository is a mock for a catalog repository
type MockRepository[E any] struct {
	mock.Mock
}

func (m *MockRepository[E]) FindAll(ctx context.Context) ([]E, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]E), args.Error(1)
}

func (m *MockRepository[E]) FindByID(ctx context.Context, id int) (E, error) {
	args := m.Called(ctx, id)
	var zero E
	if args.Get(0) == nil {
		return zero, args.Error(1)
	}
	return args.Get(0).(E), args.Error(1)
}

func (m *MockRepository[E]) Save(ctx context.Context, entity E) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockRepository[E]) SaveAll(ctx context.Context, entities []E) error {
	args := m.Called(ctx, entities)
	return args.Error(0)
}

func (m *MockRepository[E]) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository[E]) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// recordingBus delivers nothing and records published event types.
type recordingBus struct {
	mu     sync.Mutex
	events []interfaces.Event
}

func (b *recordingBus) Publish(ctx context.Context, event interfaces.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event)
	return nil
}

func (b *recordingBus) PublishAsync(ctx context.Context, event interfaces.Event) {
	_ = b.Publish(ctx, event)
}

func (b *recordingBus) Subscribe(eventType string, handler interfaces.EventHandler) error {
	return nil
}

func (b *recordingBus) Unsubscribe(eventType string, handler interfaces.EventHandler) error {
	return nil
}

func (b *recordingBus) Start(ctx context.Context) error { return nil }

func (b *recordingBus) Stop() error { return nil }

func (b *recordingBus) types() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.events))
	for i, event := range b.events {
		out[i] = event.EventType()
	}
	return out
}

func (b *recordingBus) last() interfaces.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.events) == 0 {
		return nil
	}
	return b.events[len(b.events)-1]
}
