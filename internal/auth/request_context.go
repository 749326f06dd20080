package auth

import (
	"context"
)

type contextKey string

var sessionKey contextKey = "trip_session"

// SetSession stores the session in context for use by handlers
func SetSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// GetSession retrieves the session from context, or nil when the session
// middleware did not run.
func GetSession(ctx context.Context) *Session {
	if s, ok := ctx.Value(sessionKey).(*Session); ok {
		return s
	}
	return nil
}
