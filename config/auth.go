package config

import "time"

// AuthConfig groups session-related configuration.
//
// Authentication itself is delegated to the upstream shop API: the
// storefront exchanges email/password for an opaque bearer token at
// login and resolves the role from the upstream user record. What is
// configured here is only how the resulting server-side session behaves.
type AuthConfig struct {
	// SessionTTL is the lifetime of a server-side session. The upstream
	// token carries no client-visible expiry, so staleness is discovered
	// when the upstream rejects a call; the session TTL bounds how long
	// that can take.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	// RoleHintTTL is the lifetime of the cached role hint. The hint is a
	// display optimization only and is never the sole gating input.
	RoleHintTTL time.Duration `env:"ROLE_HINT_TTL" envDefault:"24h"`
}

// Sanitize applies guardrails to session configuration values.
func (a *AuthConfig) Sanitize() {
	if a.SessionTTL <= 0 {
		a.SessionTTL = 24 * time.Hour
	}
	if a.RoleHintTTL <= 0 {
		a.RoleHintTTL = a.SessionTTL
	}
}
