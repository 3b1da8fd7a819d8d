package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamsvc/userd/internal/config"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
	}{
		{name: "debug level", logLevel: "debug"},
		{name: "info level", logLevel: "info"},
		{name: "warn level", logLevel: "warn"},
		{name: "error level", logLevel: "error"},
		{name: "mixed case level", logLevel: "DeBuG"},
		{name: "invalid level falls back to info", logLevel: "verbose"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := Setup(config.ServerConfig{LogLevel: tt.logLevel})
			require.NoError(t, err)
			require.NotNil(t, log)
		})
	}
}

func TestSetupSetsDefaultLogger(t *testing.T) {
	log, err := Setup(config.ServerConfig{LogLevel: "info"})
	require.NoError(t, err)

	assert.Same(t, log, slog.Default())
}

func TestWithLoggerAndFromContext(t *testing.T) {
	base := slog.Default().With(slog.String("component", "test"))
	ctx := WithLogger(context.Background(), base)

	assert.Same(t, base, FromContext(ctx))
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	assert.Same(t, slog.Default(), FromContext(context.Background()))
}

func TestFromContextOrDefault(t *testing.T) {
	fallback := slog.Default().With(slog.String("component", "fallback"))

	//nolint:staticcheck // nil context is the case under test
	assert.Same(t, fallback, FromContextOrDefault(nil, fallback))
	assert.Same(t, fallback, FromContextOrDefault(context.Background(), fallback))

	scoped := slog.Default().With(slog.String("trace_id", "abc"))
	ctx := WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, FromContextOrDefault(ctx, fallback))
}
