// Package logger provides the diagnostic logger for gitie.
//
// Diagnostics go exclusively to stderr so that stdout stays reserved for
// command results (passthrough git output, AI explanations, commit messages).
// Verbosity is controlled by the GITIE_LOG_LEVEL environment variable:
// "debug" enables debug lines, anything else logs warnings and errors only.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// EnvLogLevel is the environment variable controlling diagnostic verbosity.
const EnvLogLevel = "GITIE_LOG_LEVEL"

// Logger emits leveled diagnostics on stderr.
type Logger struct {
	sl *slog.Logger
}

// New creates a Logger whose level is taken from GITIE_LOG_LEVEL.
func New() *Logger {
	return NewWithLevel(os.Getenv(EnvLogLevel))
}

// NewWithLevel creates a Logger with an explicit level string.
// Recognized values are "debug", "info", "warn" and "error"; anything
// else falls back to warn.
func NewWithLevel(level string) *Logger {
	var l slog.Level
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		l = slog.LevelDebug
	case "info":
		l = slog.LevelInfo
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelWarn
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})
	return &Logger{sl: slog.New(handler)}
}

// Debug logs a debug-level diagnostic.
func (l *Logger) Debug(msg string, args ...any) {
	l.sl.Debug(msg, args...)
}

// Info logs an info-level diagnostic.
func (l *Logger) Info(msg string, args ...any) {
	l.sl.Info(msg, args...)
}

// Warn logs a warning.
func (l *Logger) Warn(msg string, args ...any) {
	l.sl.Warn(msg, args...)
}

// Error logs an error-level diagnostic.
func (l *Logger) Error(msg string, args ...any) {
	l.sl.Error(msg, args...)
}
