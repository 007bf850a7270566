package logger

import (
	"io"
	"log/slog"
	"os"
)

// Logger represents application logger.
type Logger struct {
	*slog.Logger
}

// New creates a Logger writing text records of the given level and above to w.
// A nil w means stderr so log lines never mix with command output.
func New(level int, w io.Writer) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.Level(level)})),
	}
}

// SetDefault installs l as the process-wide slog logger.
func (l *Logger) SetDefault() {
	slog.SetDefault(l.Logger)
}

// Fatal is equivalent to Error followed by os.Exit(1).
func (l *Logger) Fatal(msg string, args ...any) {
	l.Logger.Error(msg, args...)
	os.Exit(1)
}

// NewNoop returns a Logger that discards everything. Used in tests.
func NewNoop() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))}
}
