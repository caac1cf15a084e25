package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		debug bool
	}{
		{
			name:  "production without sentry",
			cfg:   Config{Tags: map[string]string{"service": "test"}},
			debug: false,
		},
		{
			name:  "debug without sentry",
			cfg:   Config{Debug: true},
			debug: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, Initialize(tt.cfg))
			require.NotNil(t, Default())
			assert.Equal(t, tt.debug, Default().Core().Enabled(zap.DebugLevel))
		})
	}
}

func TestInitialize_InvalidSentryDSN(t *testing.T) {
	err := Initialize(Config{SentryDSN: "not a dsn"})
	assert.Error(t, err)
}

func TestLogHelpers(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	previous := log
	log = zap.New(core)
	t.Cleanup(func() { log = previous })

	Info("info message", zap.String("k", "v"))
	Warn("warn message")
	Debug("debug message")
	Error(errors.New("boom"), zap.String("message", "failed"))
	Error(nil)
	InfoCtx(context.Background(), "ctx message")

	entries := logs.AllUntimed()
	require.Len(t, entries, 6)
	assert.Equal(t, "info message", entries[0].Message)
	assert.Equal(t, "v", entries[0].ContextMap()["k"])
	assert.Equal(t, "boom", entries[3].Message)
	assert.Equal(t, "error occurred", entries[4].Message)
	assert.Equal(t, "ctx message", entries[5].Message)
}

func TestTagFields(t *testing.T) {
	fields := tagFields(map[string]string{"service": "api"})
	require.Len(t, fields, 1)
	assert.Equal(t, "service", fields[0].Key)
	assert.Equal(t, "api", fields[0].String)
}
