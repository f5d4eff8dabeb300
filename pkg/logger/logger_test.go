package logger_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/narwhalmedia/catalog/pkg/interfaces"
	"github.com/narwhalmedia/catalog/pkg/logger"
)

func TestZapLogger_WritesFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := logger.NewFromZap(zap.New(core))

	log.Info("movie added", logger.Int("id", 3), logger.String("name", "Alien"))
	log.Error("save failed", logger.Error(errors.New("boom")))

	require.Equal(t, 2, logs.Len())
	entries := logs.AllUntimed()
	assert.Equal(t, "movie added", entries[0].Message)
	assert.Equal(t, int64(3), entries[0].ContextMap()["id"])
	assert.Equal(t, "Alien", entries[0].ContextMap()["name"])
	assert.Equal(t, "boom", entries[1].ContextMap()["error"])
}

func TestZapLogger_WithContextUsesRequestFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := logger.NewFromZap(zap.New(core))

	ctx := logger.WithFields(context.Background(), interfaces.String("request_id", "r-1"))
	log.WithContext(ctx).Info("handled")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "r-1", logs.All()[0].ContextMap()["request_id"])
}

func TestFromContext(t *testing.T) {
	assert.IsType(t, logger.NoopLogger{}, logger.FromContext(context.Background()))

	log := logger.NewFromZap(zap.NewNop())
	ctx := logger.WithContext(context.Background(), log)
	assert.Same(t, log, logger.FromContext(ctx))
}

func TestConfig_Build(t *testing.T) {
	cfg := logger.DefaultConfig()
	cfg.Level = "not-a-level"
	cfg.InitialFields = map[string]interface{}{"service": "catalog"}

	log, err := cfg.Build()

	require.NoError(t, err)
	assert.NotNil(t, log.Zap())
}
