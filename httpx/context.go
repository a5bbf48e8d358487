package httpx

import (
	"context"

	"dqx0.com/go/zoli/internal/obs"
)

type ctxKey int

const (
	ctxKeyRequestID ctxKey = iota
	ctxKeyCorrelationID
	ctxKeyLogger
)

// WithRequestID returns a new context that carries a request ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, id)
}

// RequestIDFrom extracts the request ID from ctx.
func RequestIDFrom(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(ctxKeyRequestID).(string)
	return s, ok && s != ""
}

// WithCorrelationID returns a new context that carries the peer's
// X-Request-Id value.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyCorrelationID, id)
}

// CorrelationIDFrom extracts the correlation ID from ctx.
func CorrelationIDFrom(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(ctxKeyCorrelationID).(string)
	return s, ok && s != ""
}

// WithLogger returns a new context carrying the connection's logger.
func WithLogger(ctx context.Context, l obs.Logger) context.Context {
	return context.WithValue(ctx, ctxKeyLogger, l)
}

// LoggerFrom returns the logger stored in ctx, or a NopLogger.
func LoggerFrom(ctx context.Context) obs.Logger {
	if l, ok := ctx.Value(ctxKeyLogger).(obs.Logger); ok && l != nil {
		return l
	}
	return obs.NopLogger{}
}
