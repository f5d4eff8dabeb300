package interfaces

import (
	"context"
)

// AllEvents is the event type a handler subscribes to in order to receive every event.
const AllEvents = "*"

// Event represents a catalog change event.
type Event interface {
	// EventID returns the unique identifier of the event
	EventID() string

	// EventType returns the type of the event, e.g. catalog.movie.created
	EventType() string

	// Timestamp returns when the event occurred in unix nanoseconds
	Timestamp() int64

	// AggregateID returns the ID of the aggregate that produced the event
	AggregateID() string

	// Payload returns the event attributes
	Payload() map[string]interface{}
}

// EventHandler handles events of a specific type.
type EventHandler interface {
	// Handle processes an event
	Handle(ctx context.Context, event Event) error

	// EventType returns the type of events this handler processes
	EventType() string
}

// EventBus provides pub/sub functionality for catalog events.
type EventBus interface {
	// Publish publishes an event to all subscribers
	Publish(ctx context.Context, event Event) error

	// PublishAsync publishes an event asynchronously
	PublishAsync(ctx context.Context, event Event)

	// Subscribe registers a handler for a specific event type or AllEvents
	Subscribe(eventType string, handler EventHandler) error

	// Unsubscribe removes a handler for a specific event type
	Unsubscribe(eventType string, handler EventHandler) error

	// Start starts the event bus
	Start(ctx context.Context) error

	// Stop waits for in-flight deliveries and stops the event bus
	Stop() error
}
