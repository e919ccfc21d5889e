package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	domainauth "github.com/vp-garments/storefront/internal/domain/auth"
)

// RoleCache caches the role string per user as a display hint.
// It is written only when a session is created or destroyed and read only
// for non-gating concerns; authorization always goes through the session.
type RoleCache struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewRoleCache creates a role hint cache with the given TTL.
func NewRoleCache(client redis.UniversalClient, ttl time.Duration) *RoleCache {
	return &RoleCache{
		client: client,
		prefix: "role:",
		ttl:    ttl,
	}
}

// SetRole records the role hint for a user.
func (c *RoleCache) SetRole(ctx context.Context, userID string, role domainauth.Role) error {
	if userID == "" {
		return errors.New("user ID cannot be empty")
	}
	return c.client.Set(ctx, c.prefix+userID, string(role), c.ttl).Err()
}

// GetRole returns the cached role hint, or ErrNotFound when absent.
func (c *RoleCache) GetRole(ctx context.Context, userID string) (domainauth.Role, error) {
	if userID == "" {
		return "", ErrNotFound
	}
	val, err := c.client.Get(ctx, c.prefix+userID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("redis get: %w", err)
	}
	return domainauth.Role(val), nil
}

// DeleteRole drops the role hint. Deleting a missing hint is a no-op.
func (c *RoleCache) DeleteRole(ctx context.Context, userID string) error {
	if userID == "" {
		return nil
	}
	return c.client.Del(ctx, c.prefix+userID).Err()
}
