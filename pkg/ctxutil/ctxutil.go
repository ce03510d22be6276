package ctxutil

import (
	"context"
	"strings"
)

type ctxKey string

const (
	userIDKey    ctxKey = "user_id"
	userNameKey  ctxKey = "user_name"
	requestIDKey ctxKey = "request_id"
)

// WithUserID stores the authenticated subject in the context.
func WithUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx extracts the authenticated subject from the context.
// Returns "" and false if the value is missing, blank, or of the wrong type.
func UserIDFromCtx(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	if !ok || strings.TrimSpace(id) == "" {
		return "", false
	}
	return id, true
}

// WithUserName stores the display name of the authenticated user.
func WithUserName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, userNameKey, name)
}

// UserNameFromCtx returns the display name, or false when absent or blank.
func UserNameFromCtx(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(userNameKey).(string)
	if !ok || strings.TrimSpace(name) == "" {
		return "", false
	}
	return name, true
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
