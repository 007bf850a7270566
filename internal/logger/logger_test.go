package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	l := New(int(slog.LevelWarn), &buf)

	l.Info("hidden")
	l.Warn("shown", "key", "value")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "key=value")
}

func TestNew_DefaultWriter(t *testing.T) {
	l := New(0, nil)
	assert.NotNil(t, l.Logger)
}

func TestNewNoop(t *testing.T) {
	assert.NotPanics(t, func() {
		NewNoop().Error("discarded")
	})
}
