// Package utils provides general-purpose helper utilities used across the
// gateway: typed context keys, JSON and raw HTTP response writers, the
// resty client factory and UUID generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// HeaderRequestID carries the request identifier on inbound responses and
// outbound upstream calls.
const HeaderRequestID = "X-Request-ID"

// RequestIDCtxKey is the key used to store the request identifier in the
// context.
var RequestIDCtxKey = contextKey("requestID")

// WithRequestID returns a copy of ctx carrying id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDCtxKey, id)
}

// GetRequestIDFromContext retrieves the request identifier from the context.
// ok is false when the value is missing or is not a non-empty string.
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDCtxKey).(string)
	return id, ok && id != ""
}
