package config

import (
	"strings"
	"time"
)

// ShopAPIConfig contains configuration for the upstream garments REST API.
// All durable state (products, carts, orders, users) lives behind this API;
// the storefront only holds sessions.
type ShopAPIConfig struct {
	// BaseURL is the single configured upstream host, e.g.
	// "https://vp-garments-production.up.railway.app". Every outbound call
	// goes to this host; there is deliberately no per-module override.
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:5000"`

	// AuthPrefix is the path prefix for auth and profile endpoints
	// (login, signup, user, profile).
	AuthPrefix string `env:"AUTH_PREFIX" envDefault:"/api/v1"`

	// ShopPrefix is the path prefix for catalog and cart endpoints.
	ShopPrefix string `env:"SHOP_PREFIX" envDefault:"/api/v2"`

	// Timeout bounds every upstream call. A hung upstream must never hang
	// a page render indefinitely.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

// Sanitize applies guardrails to upstream API configuration values.
func (s *ShopAPIConfig) Sanitize() {
	s.BaseURL = strings.TrimRight(strings.TrimSpace(s.BaseURL), "/")

	if s.AuthPrefix != "" && !strings.HasPrefix(s.AuthPrefix, "/") {
		s.AuthPrefix = "/" + s.AuthPrefix
	}
	if s.ShopPrefix != "" && !strings.HasPrefix(s.ShopPrefix, "/") {
		s.ShopPrefix = "/" + s.ShopPrefix
	}

	if s.Timeout <= 0 {
		s.Timeout = 10 * time.Second
	}
}
