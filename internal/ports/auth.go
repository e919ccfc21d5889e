// Package ports defines interfaces (hexagonal ports) for storefront behavior.
// Implementations live in internal/adapters; orchestration in internal/service.
package ports

import (
	"context"

	domainauth "github.com/vp-garments/storefront/internal/domain/auth"
)

// SessionStore persists and retrieves user sessions.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}

// RoleCache caches a user's role string as a display hint. It is written
// only on login/logout and must never be the sole gating input; sessions
// are the single source of truth for authorization.
type RoleCache interface {
	SetRole(ctx context.Context, userID string, role domainauth.Role) error
	GetRole(ctx context.Context, userID string) (domainauth.Role, error)
	DeleteRole(ctx context.Context, userID string) error
}
