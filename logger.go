package genmem

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/TESTMECS/generatitonal-mem/arena"
)

// Logger wraps slog.Logger with arena-specific helpers.
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
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
			Level: slog.Level(1000), // Unreachable level
		})),
	}
}

// WithArena adds an arena name field to the logger.
func (l *Logger) WithArena(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("arena", name),
	}
}

// LogInsert logs an insert.
func (l *Logger) LogInsert(ctx context.Context, h arena.Handle) {
	l.DebugContext(ctx, "insert completed",
		"handle", h.String(),
	)
}

// LogRemove logs a remove. ok is false when the handle was already stale.
func (l *Logger) LogRemove(ctx context.Context, h arena.Handle, ok bool) {
	if !ok {
		l.LogStale(ctx, arena.OpRemove, h)
		return
	}
	l.DebugContext(ctx, "remove completed",
		"handle", h.String(),
	)
}

// LogReplace logs a replace and the handle it issued.
func (l *Logger) LogReplace(ctx context.Context, old, next arena.Handle, err error) {
	if err != nil {
		l.WarnContext(ctx, "replace failed",
			"handle", old.String(),
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "replace completed",
			"handle", old.String(),
			"next", next.String(),
		)
	}
}

// LogClear logs a clear of an arena.
func (l *Logger) LogClear(ctx context.Context, slots, invalidated int) {
	l.InfoContext(ctx, "arena cleared",
		"slots", slots,
		"invalidated", invalidated,
	)
}

// LogStale logs a handle that failed to resolve. Stale handles are an
// expected outcome, so the record is emitted at debug level.
func (l *Logger) LogStale(ctx context.Context, op string, h arena.Handle) {
	l.DebugContext(ctx, "stale handle",
		"op", op,
		"handle", h.String(),
	)
}
