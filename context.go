package vlog

import "context"

type ctxKey int

const loggerKey ctxKey = iota

// NewContext returns a copy of ctx carrying l.
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext returns the Logger carried by ctx. When ctx carries none,
// it returns a fresh disabled Logger, so the result is always safe to use.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(loggerKey).(*Logger); ok {
		return l
	}
	return New(false)
}
