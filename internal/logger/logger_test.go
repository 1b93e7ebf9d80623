package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func observed() (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return FromZap(zap.New(core)), logs
}

func TestRedactsSensitiveKeys(t *testing.T) {
	l, logs := observed()
	l.Info("configured", "provider", "gemini", "api_key", "secret-value", "Authorization", "Bearer abc")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "gemini", fields["provider"])
	assert.Equal(t, redacted, fields["api_key"])
	assert.Equal(t, redacted, fields["Authorization"])
}

func TestRedactsCredentialShapedValues(t *testing.T) {
	l, logs := observed()
	l.Warn("oops", "value", "AIzaSyA-1234567890abcdefghijklmnopqrs", "note", "AIza is a prefix")

	fields := logs.All()[0].ContextMap()
	assert.Equal(t, redacted, fields["value"])
	assert.Equal(t, "AIza is a prefix", fields["note"])
}

func TestWithCarriesSanitizedFields(t *testing.T) {
	l, logs := observed()
	l.With("token", "t0k3n", "request_id", "r1").Debug("call")

	fields := logs.All()[0].ContextMap()
	assert.Equal(t, redacted, fields["token"])
	assert.Equal(t, "r1", fields["request_id"])
}

func TestOddKeyValueCountKept(t *testing.T) {
	out := sanitizeKVs([]any{"a", 1, "dangling"})
	assert.Equal(t, []any{"a", 1, "dangling"}, out)
}

func TestNewWithOutputEmptyPathIsNop(t *testing.T) {
	l, err := NewWithOutput("dev", "")
	require.NoError(t, err)
	assert.NotPanics(t, func() { l.Info("discarded") })
}
