package logger

import (
	"context"

	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

type contextKey struct{}

type fieldsKey struct{}

var loggerKey = contextKey{}

// FromContext retrieves a logger from the context, falling back to a no-op logger.
func FromContext(ctx context.Context) interfaces.Logger {
	if logger, ok := ctx.Value(loggerKey).(interfaces.Logger); ok {
		return logger
	}
	return NewNoop()
}

// WithContext adds a logger to the context.
func WithContext(ctx context.Context, logger interfaces.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// WithFields stores request fields in the context. Loggers pick them up via WithContext.
func WithFields(ctx context.Context, fields ...interfaces.Field) context.Context {
	existing := fieldsFromContext(ctx)
	merged := make([]interfaces.Field, 0, len(existing)+len(fields))
	merged = append(merged, existing...)
	merged = append(merged, fields...)
	return context.WithValue(ctx, fieldsKey{}, merged)
}

func fieldsFromContext(ctx context.Context) []interfaces.Field {
	if ctx == nil {
		return nil
	}
	fields, _ := ctx.Value(fieldsKey{}).([]interfaces.Field)
	return fields
}
