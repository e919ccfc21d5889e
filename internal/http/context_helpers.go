package httpx

import (
	"context"

	domainauth "github.com/vp-garments/storefront/internal/domain/auth"
)

// sessionKey is an unexported context key type to avoid collisions across packages.
// Centralized in this file so all handlers/middleware use the same key.
type sessionKey struct{}

// SetSessionInContext returns a child context that carries the given session.
// If session is nil, the original ctx is returned unchanged.
func SetSessionInContext(ctx context.Context, session *domainauth.Session) context.Context {
	if session == nil {
		return ctx
	}
	return context.WithValue(ctx, sessionKey{}, session)
}

// GetUserSessionFromContext returns the user session from context and a boolean indicating presence.
func GetUserSessionFromContext(ctx context.Context) (*domainauth.Session, bool) {
	if session, ok := ctx.Value(sessionKey{}).(*domainauth.Session); ok && session != nil {
		return session, true
	}
	return nil, false
}

// GetSessionFromContext retrieves the session from the request context.
// Maintained for convenience; prefer GetUserSessionFromContext when you need presence info.
func GetSessionFromContext(ctx context.Context) *domainauth.Session {
	if s, ok := GetUserSessionFromContext(ctx); ok {
		return s
	}
	return nil
}

// AuthStateFromContext derives the auth state from the context session.
// An absent session yields the denied state.
func AuthStateFromContext(ctx context.Context) domainauth.State {
	s, ok := GetUserSessionFromContext(ctx)
	if !ok {
		return domainauth.Denied()
	}
	return s.State()
}

// TokenFromContext returns the upstream bearer token carried by the context
// session, or the empty string for unauthenticated requests.
func TokenFromContext(ctx context.Context) string {
	s, ok := GetUserSessionFromContext(ctx)
	if !ok {
		return ""
	}
	return s.Token
}
