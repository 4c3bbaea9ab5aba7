package life

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with simulation-specific context.
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

// NewJSONLogger creates a Logger that writes JSON-formatted logs to w.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that writes human-readable text logs to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithRunID tags every record with a run identifier.
func (l *Logger) WithRunID(id string) *Logger {
	return &Logger{
		Logger: l.Logger.With("run_id", id),
	}
}

// WithSize adds the grid dimensions to the logger.
func (l *Logger) WithSize(rows, cols int) *Logger {
	return &Logger{
		Logger: l.Logger.With("rows", rows, "cols", cols),
	}
}

// LogRunning logs a simulation start or stop transition.
func (l *Logger) LogRunning(ctx context.Context, running bool, generation uint64) {
	msg := "simulation stopped"
	if running {
		msg = "simulation started"
	}
	l.InfoContext(ctx, msg, "generation", generation)
}

// LogStep logs a single generation step.
func (l *Logger) LogStep(ctx context.Context, generation uint64, population int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "step failed",
			"generation", generation,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "step completed",
		"generation", generation,
		"population", population,
		"duration", duration,
	)
}

// LogLoad logs loading a grid or pattern.
func (l *Logger) LogLoad(ctx context.Context, source string, population int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed",
			"source", source,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "pattern loaded",
		"source", source,
		"population", population,
	)
}

// LogSave logs writing a pattern file.
func (l *Logger) LogSave(ctx context.Context, path string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "save failed",
			"path", path,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "pattern saved",
		"path", path,
	)
}
