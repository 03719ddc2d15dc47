package logger

import (
	"context"
	"log/slog"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// WithRequestID guarda el request ID en el context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(requestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// FromContext devuelve un logger con el request_id del context, si existe.
func FromContext(ctx context.Context) *slog.Logger {
	l := GetLogger()
	if requestID := GetRequestID(ctx); requestID != "" {
		l = l.With("request_id", requestID)
	}
	return l
}
