package bootstrap

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/vp-garments/storefront/config"
	redisadapter "github.com/vp-garments/storefront/internal/adapters/redis"
	"github.com/vp-garments/storefront/internal/adapters/shopapi"
	"github.com/vp-garments/storefront/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Auth    *service.AuthService
	Catalog *service.CatalogService
	Cart    *service.CartService
	Profile *service.ProfileService
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// NewServices wires the upstream shop client and Redis adapters into the
// application services. All durable state lives behind the shop API;
// Redis holds only sessions and role hints.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	if deps == nil || deps.Config == nil {
		return ServiceContainer{}, errors.New("service deps require a config")
	}
	cfg := deps.Config

	shop, err := shopapi.NewClient(shopapi.Config{
		BaseURL:    cfg.ShopAPI.BaseURL,
		AuthPrefix: cfg.ShopAPI.AuthPrefix,
		ShopPrefix: cfg.ShopAPI.ShopPrefix,
		Timeout:    cfg.ShopAPI.Timeout,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("build shop api client: %w", err)
	}

	sessions := redisadapter.NewSessionStore(deps.RedisClient)
	roles := redisadapter.NewRoleCache(deps.RedisClient, cfg.Auth.RoleHintTTL)

	auth := service.NewAuthService(service.AuthServiceOptions{
		Shop:       shop,
		Sessions:   sessions,
		Roles:      roles,
		SessionTTL: cfg.Auth.SessionTTL,
	})

	return ServiceContainer{
		Auth:    auth,
		Catalog: service.NewCatalogService(shop),
		Cart:    service.NewCartService(shop),
		Profile: service.NewProfileService(shop),
	}, nil
}
