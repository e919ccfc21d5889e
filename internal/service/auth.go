package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/vp-garments/storefront/internal/domain/auth"
	"github.com/vp-garments/storefront/internal/ports"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Shop       ports.ShopAPI
	Sessions   ports.SessionStore
	Roles      ports.RoleCache
	SessionTTL time.Duration
}

// AuthService orchestrates authentication against the upstream shop API and
// owns the server-side session lifecycle. The session is the single source
// of truth for authorization; the role cache is a display hint only.
type AuthService struct {
	shop       ports.ShopAPI
	sessions   ports.SessionStore
	roles      ports.RoleCache
	sessionTTL time.Duration
}

var errSessionExpired = errors.New("session expired")

const defaultSessionTTL = 24 * time.Hour

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &AuthService{
		shop:       opts.Shop,
		sessions:   opts.Sessions,
		roles:      opts.Roles,
		sessionTTL: ttl,
	}
}

// LoginResult contains the result of a completed login.
type LoginResult struct {
	Session domainauth.Session
}

// Login exchanges credentials for an upstream token, resolves the role from
// the upstream user record, and persists a session. The role is asserted
// from the just-received response rather than re-verified on later reads.
func (s *AuthService) Login(ctx context.Context, creds ports.Credentials) (*LoginResult, error) {
	if creds.Email == "" {
		return nil, errors.New("email is required")
	}
	if creds.Password == "" {
		return nil, errors.New("password is required")
	}

	token, err := s.shop.Login(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("upstream login: %w", err)
	}

	// Resolve the role while the token is fresh. A token we cannot resolve
	// a user for is useless; fail closed rather than creating a session
	// with a guessed role.
	user, err := s.shop.CurrentUser(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("resolve user: %w", err)
	}

	session := domainauth.Session{
		ID:        generateSessionID(),
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      domainauth.Role(user.Role),
		Token:     token,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}

	if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
		return nil, fmt.Errorf("save session: %w", saveErr)
	}

	// Hint only; a stale or missing hint never affects gating.
	if s.roles != nil {
		_ = s.roles.SetRole(ctx, session.UserID, session.Role)
	}

	return &LoginResult{Session: session}, nil
}

// Signup registers a new account upstream. No session is created; the user
// logs in afterwards, matching the upstream flow.
func (s *AuthService) Signup(ctx context.Context, in ports.SignupInput) error {
	if err := s.shop.Signup(ctx, in); err != nil {
		return fmt.Errorf("upstream signup: %w", err)
	}
	return nil
}

// GetSession retrieves a session by ID.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, errors.New("session ID is required")
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	// Check if session is expired
	if time.Now().After(session.ExpiresAt) {
		// Clean up expired session
		if deleteErr := s.sessions.Delete(ctx, sessionID); deleteErr != nil {
			return nil, errors.Join(errSessionExpired, fmt.Errorf("delete session: %w", deleteErr))
		}
		return nil, errSessionExpired
	}

	return &session, nil
}

// Resolve derives the auth state for a session ID. Every failure path
// (empty ID, store miss, expiry) yields the denied state; never partial.
func (s *AuthService) Resolve(ctx context.Context, sessionID string) domainauth.State {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return domainauth.Denied()
	}
	return session.State()
}

// Logout removes a session and drops the role hint.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil // Nothing to logout
	}

	// Learn the user before the session disappears so the hint can go too.
	if s.roles != nil {
		if session, err := s.sessions.Get(ctx, sessionID); err == nil {
			_ = s.roles.DeleteRole(ctx, session.UserID)
		}
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

// RoleHint returns the cached role for a user, or empty when unknown.
// Callers must treat this as advisory; gating reads the session.
func (s *AuthService) RoleHint(ctx context.Context, userID string) domainauth.Role {
	if s.roles == nil {
		return ""
	}
	role, err := s.roles.GetRole(ctx, userID)
	if err != nil {
		return ""
	}
	return role
}

// generateSessionID creates a cryptographically secure random session ID.
func generateSessionID() string {
	// Use UUID for session ID - it's URL-safe and has good entropy
	id := uuid.New()
	return id.String()
}
