// Package kafka forwards catalog change events to a Kafka topic.
package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"

	infraevents "github.com/narwhalmedia/catalog/internal/infrastructure/events"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

// Publisher forwards every event of the bus it is subscribed to. Messages are
// keyed by aggregate id so that changes of one record stay ordered.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   interfaces.Logger
}

var _ interfaces.EventHandler = (*Publisher)(nil)

// NewConfig returns the producer configuration used by NewPublisher.
func NewConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	return config
}

// NewPublisher creates a new Kafka event publisher
func NewPublisher(brokers []string, topic string, logger interfaces.Logger) (*Publisher, error) {
	producer, err := sarama.NewSyncProducer(brokers, NewConfig())
	if err != nil {
		return nil, fmt.Errorf("creating producer: %w", err)
	}
	return NewPublisherWithProducer(producer, topic, logger), nil
}

// NewPublisherWithProducer creates a publisher over an existing producer.
func NewPublisherWithProducer(producer sarama.SyncProducer, topic string, logger interfaces.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
		logger:   logger.WithFields(interfaces.String("component", "kafka_publisher")),
	}
}

// Handle sends event to the topic.
func (p *Publisher) Handle(ctx context.Context, event interfaces.Event) error {
	data, err := infraevents.Marshal(event)
	if err != nil {
		return err
	}

	message := &sarama.ProducerMessage{
		Topic: p.topic,
		Value: sarama.ByteEncoder(data),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_id"), Value: []byte(event.EventID())},
			{Key: []byte("event_type"), Value: []byte(event.EventType())},
		},
	}
	if id := event.AggregateID(); id != "" {
		message.Key = sarama.StringEncoder(id)
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		p.logger.Error("Failed to send event",
			interfaces.String("event_type", event.EventType()),
			interfaces.Error(err))
		return fmt.Errorf("sending message: %w", err)
	}

	p.logger.Debug("Event sent",
		interfaces.String("event_type", event.EventType()),
		interfaces.Any("partition", partition),
		interfaces.Int64("offset", offset))
	return nil
}

// EventType subscribes the publisher to every event.
func (p *Publisher) EventType() string {
	return interfaces.AllEvents
}

// Close closes the publisher
func (p *Publisher) Close() error {
	return p.producer.Close()
}
