// Package nats forwards catalog change events to a NATS JetStream stream.
package nats

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"

	infraevents "github.com/narwhalmedia/catalog/internal/infrastructure/events"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

// Publisher forwards every event of the bus it is subscribed to. The subject
// of a message is the event type, e.g. catalog.movie.created.
type Publisher struct {
	js      jetstream.JetStream
	logger  interfaces.Logger
	timeout time.Duration
}

var _ interfaces.EventHandler = (*Publisher)(nil)

// NewPublisher creates a new NATS event publisher
func NewPublisher(client *Client, logger interfaces.Logger) *Publisher {
	return &Publisher{
		js:      client.JetStream(),
		logger:  logger.WithFields(interfaces.String("component", "nats_publisher")),
		timeout: 5 * time.Second,
	}
}

// Handle publishes event with its id as deduplication id.
func (p *Publisher) Handle(ctx context.Context, event interfaces.Event) error {
	data, err := infraevents.Marshal(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	ack, err := p.js.Publish(ctx, event.EventType(), data, jetstream.WithMsgID(event.EventID()))
	if err != nil {
		p.logger.Error("Failed to publish event",
			interfaces.String("event_id", event.EventID()),
			interfaces.String("event_type", event.EventType()),
			interfaces.Error(err))
		return fmt.Errorf("failed to publish event: %w", err)
	}

	p.logger.Debug("Event published",
		interfaces.String("event_id", event.EventID()),
		interfaces.String("event_type", event.EventType()),
		interfaces.Any("sequence", ack.Sequence),
		interfaces.String("stream", ack.Stream))
	return nil
}

// EventType subscribes the publisher to every event.
func (p *Publisher) EventType() string {
	return interfaces.AllEvents
}
