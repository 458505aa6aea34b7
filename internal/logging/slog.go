// Package logging adapts log/slog to the library's Logger interface.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/sanodmendis/ShuffleRooster/types"
)

// Output formats accepted by New.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// SlogLogger implements types.Logger using Go's standard log/slog package.
type SlogLogger struct {
	logger *slog.Logger
}

// Compile-time assertion that SlogLogger implements Logger.
var _ types.Logger = (*SlogLogger)(nil)

// NewSlog creates a new slog-based logger.
//
// Parameters:
//   - logger: The underlying slog.Logger instance to use
//
// Returns:
//   - *SlogLogger: A new logger instance that wraps the provided slog.Logger
//
// Example:
//
//	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
//	logger := NewSlog(slog.New(handler))
//	logger.Info("roster loaded", "records", 28)
func NewSlog(logger *slog.Logger) *SlogLogger {
	return &SlogLogger{logger: logger}
}

// NewSlogDefault creates a new slog-based logger using slog.Default().
func NewSlogDefault() *SlogLogger {
	return &SlogLogger{logger: slog.Default()}
}

// New creates a logger writing to w with the given level and format.
//
// Parameters:
//   - w: Destination (os.Stderr if nil)
//   - level: "debug", "info", "warn" or "error"
//   - format: FormatText or FormatJSON
//
// Returns:
//   - *SlogLogger: Configured logger
//   - error: Unknown level or format
func New(w io.Writer, level, format string) (*SlogLogger, error) {
	if w == nil {
		w = os.Stderr
	}

	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	switch strings.ToLower(format) {
	case "", FormatText:
		handler = slog.NewTextHandler(w, opts)
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	return NewSlog(slog.New(handler)), nil
}

// ParseLevel converts a level name into a slog.Level. Empty means info.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}

// Debug logs a debug-level message with optional key-value pairs.
func (l *SlogLogger) Debug(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

// Info logs an info-level message with optional key-value pairs.
func (l *SlogLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Info(msg, keysAndValues...)
}

// Warn logs a warning-level message with optional key-value pairs.
func (l *SlogLogger) Warn(msg string, keysAndValues ...any) {
	l.logger.Warn(msg, keysAndValues...)
}

// Error logs an error-level message with optional key-value pairs.
func (l *SlogLogger) Error(msg string, keysAndValues ...any) {
	l.logger.Error(msg, keysAndValues...)
}

// Fatal logs a fatal-level message with optional key-value pairs and exits.
//
// This method logs at Error level (slog doesn't have a Fatal level) and then
// calls os.Exit(1) to terminate the program.
func (l *SlogLogger) Fatal(msg string, keysAndValues ...any) {
	l.logger.Error(msg, keysAndValues...)
	os.Exit(1) //nolint:revive // Fatal should exit the program
}
