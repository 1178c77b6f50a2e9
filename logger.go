package unitgo

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with unitgo-specific context.
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
	return NewJSONLoggerTo(os.Stderr, level)
}

// NewJSONLoggerTo is NewJSONLogger writing to w.
func NewJSONLoggerTo(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewTextLoggerTo(os.Stderr, level)
}

// NewTextLoggerTo is NewTextLogger writing to w.
func NewTextLoggerTo(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithUnit adds a unit field to the logger.
func (l *Logger) WithUnit(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("unit", name),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogConvert logs a single conversion.
func (l *Logger) LogConvert(ctx context.Context, value float64, from, to string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "convert failed",
			"value", value,
			"from", from,
			"to", to,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "convert completed",
			"value", value,
			"from", from,
			"to", to,
		)
	}
}

// LogBatchConvert logs a batch conversion.
func (l *Logger) LogBatchConvert(ctx context.Context, count int, err error) {
	if err != nil {
		l.WarnContext(ctx, "batch convert failed",
			"count", count,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "batch convert completed",
			"count", count,
		)
	}
}

// LogSum logs the addition of count quantities into unit to.
func (l *Logger) LogSum(ctx context.Context, count int, to string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "sum failed",
			"count", count,
			"to", to,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "sum completed",
			"count", count,
			"to", to,
		)
	}
}

// LogDefine logs the definition of a unit.
func (l *Logger) LogDefine(ctx context.Context, name, symbol string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "define failed",
			"unit", name,
			"symbol", symbol,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "unit defined",
			"unit", name,
			"symbol", symbol,
		)
	}
}

// LogDefinitions logs the outcome of loading a definitions source.
func (l *Logger) LogDefinitions(ctx context.Context, source string, defined int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load definitions failed",
			"source", source,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "definitions loaded",
			"source", source,
			"defined", defined,
		)
	}
}

// LogSave logs a snapshot save.
func (l *Logger) LogSave(ctx context.Context, name string, records, size int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot save failed",
			"snapshot", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "snapshot saved",
			"snapshot", name,
			"records", records,
			"bytes", size,
		)
	}
}

// LogLoad logs a snapshot load.
func (l *Logger) LogLoad(ctx context.Context, name string, defined int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot load failed",
			"snapshot", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "snapshot loaded",
			"snapshot", name,
			"defined", defined,
		)
	}
}
