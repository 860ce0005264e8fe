// Package utils provides small helpers shared across the server and the
// client: request-context keys, JSON response writing, the resty client
// wrapper and trace id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// ResourceIDCtxKey is the key under which the decoded resource path of the
// current request is stored.
var ResourceIDCtxKey = contextKey("resourceID")

// WithResourceID returns a copy of ctx carrying id.
func WithResourceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ResourceIDCtxKey, id)
}

// GetResourceIDFromContext returns the resource id stored by WithResourceID.
// ok is false when no id (or a value of another type) is present.
func GetResourceIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ResourceIDCtxKey).(string)
	return id, ok
}
