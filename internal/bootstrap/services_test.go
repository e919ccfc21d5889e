package bootstrap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vp-garments/storefront/config"
)

func TestNewServicesWiresAllServices(t *testing.T) {
	cfg := &config.AppConfig{
		ShopAPI: config.ShopAPIConfig{
			BaseURL:    "http://localhost:5000",
			AuthPrefix: "/api/v1",
			ShopPrefix: "/api/v2",
			Timeout:    5 * time.Second,
		},
		Auth: config.AuthConfig{
			SessionTTL:  time.Hour,
			RoleHintTTL: time.Hour,
		},
	}

	services, err := NewServices(&ServiceDeps{Config: cfg})
	require.NoError(t, err)

	assert.NotNil(t, services.Auth)
	assert.NotNil(t, services.Catalog)
	assert.NotNil(t, services.Cart)
	assert.NotNil(t, services.Profile)
}

func TestNewServicesRequiresConfig(t *testing.T) {
	_, err := NewServices(nil)
	require.Error(t, err)

	_, err = NewServices(&ServiceDeps{})
	require.Error(t, err)
}

func TestNewServicesRequiresShopBaseURL(t *testing.T) {
	cfg := &config.AppConfig{}

	_, err := NewServices(&ServiceDeps{Config: cfg})
	require.Error(t, err)
}
