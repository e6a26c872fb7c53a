package itemquery

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with itemquery-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithPredicate adds a predicate id field to the logger.
func (l *Logger) WithPredicate(id string) *Logger {
	return &Logger{
		Logger: l.Logger.With("predicate", id),
	}
}

// LogRegister logs a predicate registration.
func (l *Logger) LogRegister(id string, err error) {
	if err != nil {
		l.Error("predicate registration failed",
			"predicate", id,
			"error", err,
		)
	} else {
		l.Debug("predicate registered",
			"predicate", id,
		)
	}
}

// LogMatch logs one query evaluation.
func (l *Logger) LogMatch(query string, matched bool) {
	l.Debug("query evaluated",
		"query", query,
		"matched", matched,
	)
}
