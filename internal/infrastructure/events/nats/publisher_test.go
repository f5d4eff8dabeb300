package nats_test

import (
	"context"
	"testing"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narwhalmedia/catalog/internal/infrastructure/events/nats"
	"github.com/narwhalmedia/catalog/pkg/config"
	"github.com/narwhalmedia/catalog/pkg/events"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
	"github.com/narwhalmedia/catalog/pkg/logger"
)

func TestPublisher_Handle(t *testing.T) {
	// Skip if NATS is not available
	cfg := config.NATSSettings{
		URL:           "nats://localhost:4222",
		ClientID:      "test-publisher",
		Stream:        "CATALOG_TEST",
		MaxReconnect:  1,
		ReconnectWait: time.Second,
	}

	client, cleanup, err := nats.NewClient(cfg, logger.NewNoop())
	if err != nil {
		t.Skip("NATS not available:", err)
	}
	defer cleanup()

	publisher := nats.NewPublisher(client, logger.NewNoop())
	assert.Equal(t, interfaces.AllEvents, publisher.EventType())

	ctx := context.Background()
	event := events.NewAggregateEvent("catalog.movie.created", "1", nil)

	// Publish twice, the second message is deduplicated
	require.NoError(t, publisher.Handle(ctx, event))
	require.NoError(t, publisher.Handle(ctx, event))

	stream, err := client.JetStream().Stream(ctx, cfg.Stream)
	require.NoError(t, err)
	msg, err := stream.GetLastMsgForSubject(ctx, "catalog.movie.created")
	require.NoError(t, err)
	assert.Equal(t, event.EventID(), msg.Header.Get(jetstream.MsgIDHeader))

	assert.NoError(t, client.Health(ctx))
	require.NoError(t, client.JetStream().DeleteStream(ctx, cfg.Stream))
}
