package events

import (
	"context"
	"slices"
	"sync"

	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

// InMemoryEventBus delivers catalog events to handlers in process. Broker
// publishers subscribe to AllEvents to forward every event.
type InMemoryEventBus struct {
	handlers map[string][]interfaces.EventHandler
	mu       sync.RWMutex
	logger   interfaces.Logger
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewInMemoryEventBus creates a new in-memory event bus
func NewInMemoryEventBus(logger interfaces.Logger) *InMemoryEventBus {
	ctx, cancel := context.WithCancel(context.Background())
	return &InMemoryEventBus{
		handlers: make(map[string][]interfaces.EventHandler),
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Publish delivers an event to the handlers of its type and to AllEvents handlers.
// Handler failures are logged and do not stop delivery.
func (eb *InMemoryEventBus) Publish(ctx context.Context, event interfaces.Event) error {
	for _, handler := range eb.handlersFor(event.EventType()) {
		if err := handler.Handle(ctx, event); err != nil {
			eb.logger.Error("Event handler failed",
				interfaces.String("event_type", event.EventType()),
				interfaces.String("event_id", event.EventID()),
				interfaces.String("aggregate_id", event.AggregateID()),
				interfaces.String("handler", handler.EventType()),
				interfaces.Error(err))
		}
	}
	return nil
}

// handlersFor snapshots the handlers of eventType followed by the AllEvents handlers.
func (eb *InMemoryEventBus) handlersFor(eventType string) []interfaces.EventHandler {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	if eventType == interfaces.AllEvents {
		return slices.Clone(eb.handlers[eventType])
	}
	return slices.Concat(eb.handlers[eventType], eb.handlers[interfaces.AllEvents])
}

// PublishAsync publishes an event asynchronously. Events published after Stop are dropped.
func (eb *InMemoryEventBus) PublishAsync(ctx context.Context, event interfaces.Event) {
	if eb.ctx.Err() != nil {
		eb.logger.Warn("Event bus stopped, dropping event",
			interfaces.String("event_type", event.EventType()))
		return
	}

	eb.wg.Add(1)
	go func() {
		defer eb.wg.Done()
		// the caller's context usually ends with the request
		if err := eb.Publish(context.WithoutCancel(ctx), event); err != nil {
			eb.logger.Error("Async event publish failed",
				interfaces.String("event_type", event.EventType()),
				interfaces.Error(err))
		}
	}()
}

// Subscribe registers a handler for eventType or for AllEvents
func (eb *InMemoryEventBus) Subscribe(eventType string, handler interfaces.EventHandler) error {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.handlers[eventType] = append(eb.handlers[eventType], handler)
	eb.logger.Debug("Event handler subscribed",
		interfaces.String("event_type", eventType),
		interfaces.String("handler", handler.EventType()))

	return nil
}

// Unsubscribe removes a handler for a specific event type
func (eb *InMemoryEventBus) Unsubscribe(eventType string, handler interfaces.EventHandler) error {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	handlers := eb.handlers[eventType]
	if i := slices.Index(handlers, handler); i >= 0 {
		eb.handlers[eventType] = slices.Delete(slices.Clone(handlers), i, i+1)
	}
	return nil
}

// Start starts the event bus
func (eb *InMemoryEventBus) Start(ctx context.Context) error {
	eb.logger.Info("Event bus started")
	return nil
}

// Stop waits for pending async deliveries and stops the event bus
func (eb *InMemoryEventBus) Stop() error {
	eb.cancel()
	eb.wg.Wait()
	eb.logger.Info("Event bus stopped")
	return nil
}
