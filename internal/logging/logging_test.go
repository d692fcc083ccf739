package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		Raw   string
		Level slog.Level
	}{
		{Raw: "debug", Level: slog.LevelDebug},
		{Raw: "WARN", Level: slog.LevelWarn},
		{Raw: "error", Level: slog.LevelError},
		{Raw: "", Level: slog.LevelInfo},
		{Raw: "loud", Level: slog.LevelInfo},
	}

	for _, test := range tests {
		t.Run(test.Raw, func(t *testing.T) {
			assert.Equal(t, test.Level, ParseLevel(test.Raw))
		})
	}
}

func TestLevelHandler(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, slog.LevelWarn).With("component", "test")

	l.Info("hidden")
	l.Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "component=test")
}

func TestNewLevelHandler_Unwraps(t *testing.T) {
	inner := NewLevelHandler(slog.LevelError, slog.NewTextHandler(&bytes.Buffer{}, nil))
	outer := NewLevelHandler(slog.LevelDebug, inner)
	assert.Equal(t, inner.Handler, outer.Handler)
}

func TestDiscard(t *testing.T) {
	assert.False(t, Discard().Enabled(t.Context(), slog.LevelError))
}
