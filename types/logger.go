package types

// Logger is the structured logger used by Grouper and Session.
//
// Arguments follow the *slog.Logger key-value convention; internal/logging
// adapts log/slog to it, and the library is silent unless one is configured.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)

	// Fatal logs and exits the process. No-op and test loggers may skip the exit.
	Fatal(msg string, keysAndValues ...any)
}
