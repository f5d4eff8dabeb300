package logger

import (
	"context"

	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

// NoopLogger drops every entry. Fatal does not exit.
type NoopLogger struct{}

var _ interfaces.Logger = NoopLogger{}

// NewNoop returns a logger for tests and for callers that want no output.
func NewNoop() interfaces.Logger {
	return NoopLogger{}
}

func (NoopLogger) Debug(string, ...interfaces.Field) {}
func (NoopLogger) Info(string, ...interfaces.Field)  {}
func (NoopLogger) Warn(string, ...interfaces.Field)  {}
func (NoopLogger) Error(string, ...interfaces.Field) {}
func (NoopLogger) Fatal(string, ...interfaces.Field) {}

func (n NoopLogger) WithContext(context.Context) interfaces.Logger    { return n }
func (n NoopLogger) WithFields(...interfaces.Field) interfaces.Logger { return n }
