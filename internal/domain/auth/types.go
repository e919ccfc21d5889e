// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.
package auth

import "time"

// Role represents an application's authorization role, as reported by the
// upstream shop API's user record. Keep string form for easy persistence.
// Only RoleAdmin is distinguished from all other values; anything else is
// treated as a regular customer.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// IsAdmin reports whether the role is exactly the admin role (case-sensitive).
func (r Role) IsAdmin() bool { return r == RoleAdmin }

// Session is the server-side record persisted for an authenticated user.
// ID is an opaque session identifier; Token is the opaque bearer credential
// issued by the upstream shop API at login and replayed on its behalf.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsAdmin reports whether the session belongs to an admin user.
func (s Session) IsAdmin() bool { return s.Role.IsAdmin() }

// State derives the externally visible auth state from the session.
func (s Session) State() State {
	return State{IsAuthenticated: true, IsAdmin: s.Role.IsAdmin()}
}

// State is the resolved {IsAuthenticated, IsAdmin} pair.
// Invariant: IsAdmin implies IsAuthenticated; the two constructors below are
// the only ways a State should be produced.
type State struct {
	IsAuthenticated bool
	IsAdmin         bool
}

// Denied is the fail-closed state used on every ambiguous or error path:
// no token, no session, upstream rejection. Never partially true.
func Denied() State { return State{} }
