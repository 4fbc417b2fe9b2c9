package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferLoggerCaptures(t *testing.T) {
	l := NewBufferLogger()

	l.Debug("debug %d", 1)
	l.Info("info %s", "message")
	l.Warn("warn")
	l.Error("error")

	require.Len(t, l.Messages, 4)
	assert.Equal(t, LogMessage{Level: "debug", Message: "debug 1"}, l.Messages[0])
	assert.Equal(t, LogMessage{Level: "info", Message: "info message"}, l.Messages[1])
	assert.Equal(t, "warn", l.Messages[2].Level)
	assert.Equal(t, "error", l.Messages[3].Level)
}

func TestBufferLoggerHasLevel(t *testing.T) {
	l := NewBufferLogger()
	l.Warn("sensor error (%d/3)", 1)

	assert.True(t, l.HasLevel("warn"))
	assert.False(t, l.HasLevel("error"))
}

func TestBufferLoggerClear(t *testing.T) {
	l := NewBufferLogger()
	l.Info("one")
	l.Clear()

	assert.Empty(t, l.Messages)
}

func TestNoopLoggerDiscards(t *testing.T) {
	l := Noop()

	// Must not panic, must not produce anything observable
	l.Debug("a")
	l.Info("b")
	l.Warn("c")
	l.Error("d")
}

func TestDefaultLoggerSwap(t *testing.T) {
	original := Default()
	defer SetDefault(original)

	buf := NewBufferLogger()
	SetDefault(buf)

	Default().Info("hello")
	assert.True(t, buf.HasLevel("info"))
}

func TestEnvLoggerDebugGated(t *testing.T) {
	t.Setenv("PHBUDDY_DEBUG", "")

	// Debug with the env var unset must be a no-op; nothing to assert beyond
	// the call not panicking, the gate itself is exercised.
	l := NewEnvLogger("[test]")
	l.Debug("hidden")

	t.Setenv("PHBUDDY_DEBUG", "1")
	l.Debug("visible")
}
