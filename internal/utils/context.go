// Package utils holds small helpers shared across layers: typed context
// keys, JSON response writing, the outbound HTTP client and id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-ask-board/models"
)

// contextKey is a private type for context keys, so they never collide with
// string keys of other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

var (
	// IdentityCtxKey stores the [models.Identity] resolved from the session
	// cookie.
	IdentityCtxKey = contextKey("identity")

	// SessionIDCtxKey stores the raw session id the request carried.
	SessionIDCtxKey = contextKey("sessionID")
)

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// GetIdentityFromContext returns the identity stored in ctx. Requests that
// passed no session middleware resolve to a guest.
func GetIdentityFromContext(ctx context.Context) models.Identity {
	identity, _ := ctx.Value(IdentityCtxKey).(models.Identity)
	return identity
}

// WithSessionID returns a copy of ctx carrying the session id.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, SessionIDCtxKey, sessionID)
}

// GetSessionIDFromContext returns the session id stored in ctx, if any.
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionIDCtxKey).(string)
	return sessionID, ok && sessionID != ""
}
