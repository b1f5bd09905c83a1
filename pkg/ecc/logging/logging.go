package logging

import (
	"context"
	"io"
	"log/slog"
	"math/big"
)

const redactedPlaceholder = "[redacted]"

// Logger is the subset of slog used by the ecc packages. Applications may
// supply their own implementation to route or filter records.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}

// New returns a Logger backed by logger. Passing nil binds to slog.Default().
func New(logger *slog.Logger) Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &slogLogger{logger: logger}
}

// Discard returns a Logger that drops every record.
func Discard() Logger {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type slogLogger struct {
	logger *slog.Logger
}

func (l *slogLogger) Debug(ctx context.Context, msg string, args ...any) {
	l.logger.DebugContext(ctx, msg, args...)
}

func (l *slogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.logger.InfoContext(ctx, msg, args...)
}

func (l *slogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.logger.WarnContext(ctx, msg, args...)
}

func (l *slogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.logger.ErrorContext(ctx, msg, args...)
}

func (l *slogLogger) With(args ...any) Logger {
	return &slogLogger{logger: l.logger.With(args...)}
}

// Redacted marks an attribute whose value was deliberately left out.
func Redacted(key string) slog.Attr {
	return slog.String(key, redactedPlaceholder)
}

// BitLen records the bit length of a secret scalar without its value.
func BitLen(key string, v *big.Int) slog.Attr {
	if v == nil {
		return slog.Int(key, 0)
	}
	return slog.Int(key, v.BitLen())
}

// Placeholder returns the string that stands in for redacted values.
func Placeholder() string {
	return redactedPlaceholder
}
