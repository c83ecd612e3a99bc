package ctxutil

import (
	"context"
	"strings"
)

type ctxKey string

const (
	callerIDKey  ctxKey = "caller_id"
	requestIDKey ctxKey = "request_id"
)

// WithCallerID stores the authenticated caller identity in the context.
func WithCallerID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, callerIDKey, id)
}

// CallerIDFromCtx extracts the caller identity from the context.
// Returns "" and false if the value is missing, blank, or wrong type.
func CallerIDFromCtx(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(callerIDKey).(string)
	if !ok || strings.TrimSpace(id) == "" {
		return "", false
	}
	return id, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
