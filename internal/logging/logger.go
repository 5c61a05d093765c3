// Package logging wraps log/slog with leveled, component-scoped loggers
// for dotspec commands.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// LogLevel represents different log levels
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l LogLevel) slogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Logger interface for structured logging
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...any)
	Info(ctx context.Context, msg string, fields ...any)
	Warn(ctx context.Context, err error, msg string, fields ...any)
	Error(ctx context.Context, err error, msg string, fields ...any)

	With(fields ...any) Logger
	WithComponent(component string) Logger
}

type slogLogger struct {
	logger *slog.Logger
}

// NewLogger creates a text logger writing to w at the given level.
func NewLogger(w io.Writer, level LogLevel) Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level.slogLevel()})
	return &slogLogger{logger: slog.New(handler)}
}

// Default returns a stderr logger at info level.
func Default() Logger {
	return NewLogger(os.Stderr, LevelInfo)
}

func (l *slogLogger) Debug(ctx context.Context, msg string, fields ...any) {
	l.logger.DebugContext(ctx, msg, fields...)
}

func (l *slogLogger) Info(ctx context.Context, msg string, fields ...any) {
	l.logger.InfoContext(ctx, msg, fields...)
}

func (l *slogLogger) Warn(ctx context.Context, err error, msg string, fields ...any) {
	l.logger.WarnContext(ctx, msg, withError(err, fields)...)
}

func (l *slogLogger) Error(ctx context.Context, err error, msg string, fields ...any) {
	l.logger.ErrorContext(ctx, msg, withError(err, fields)...)
}

func (l *slogLogger) With(fields ...any) Logger {
	return &slogLogger{logger: l.logger.With(fields...)}
}

func (l *slogLogger) WithComponent(component string) Logger {
	return l.With("component", component)
}

func withError(err error, fields []any) []any {
	if err == nil {
		return fields
	}
	return append([]any{"error", err.Error()}, fields...)
}
