package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/vp-garments/storefront/internal/domain/model"
	apperrors "github.com/vp-garments/storefront/internal/errors"
	"github.com/vp-garments/storefront/internal/ports"
)

// CatalogService orchestrates catalog reads and admin product mutations.
// It validates inputs before forwarding; the upstream remains authoritative
// for everything it accepts.
type CatalogService struct {
	shop ports.ShopAPI
}

// NewCatalogService constructs a new CatalogService.
func NewCatalogService(shop ports.ShopAPI) *CatalogService {
	return &CatalogService{shop: shop}
}

// List returns catalog products matching the filter.
func (s *CatalogService) List(ctx context.Context, token string, filter model.ProductFilter) ([]model.Product, error) {
	products, err := s.shop.Products(ctx, token, filter)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// Get returns a single product by ID.
func (s *CatalogService) Get(ctx context.Context, token, id string) (model.Product, error) {
	if strings.TrimSpace(id) == "" {
		return model.Product{}, apperrors.Validation("product id is required")
	}
	product, err := s.shop.ProductByID(ctx, token, id)
	if err != nil {
		return model.Product{}, fmt.Errorf("get product %s: %w", id, err)
	}
	return product, nil
}

// Create validates and creates a product.
func (s *CatalogService) Create(ctx context.Context, token string, in model.ProductInput) (model.Product, error) {
	if err := in.Validate(); err != nil {
		return model.Product{}, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid product")
	}
	product, err := s.shop.CreateProduct(ctx, token, in)
	if err != nil {
		return model.Product{}, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}

// Update validates and updates a product by ID.
func (s *CatalogService) Update(ctx context.Context, token, id string, in model.ProductInput) (model.Product, error) {
	if strings.TrimSpace(id) == "" {
		return model.Product{}, apperrors.Validation("product id is required")
	}
	if err := in.Validate(); err != nil {
		return model.Product{}, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid product")
	}
	product, err := s.shop.UpdateProduct(ctx, token, id, in)
	if err != nil {
		return model.Product{}, fmt.Errorf("update product %s: %w", id, err)
	}
	return product, nil
}

// Delete removes a product by ID.
func (s *CatalogService) Delete(ctx context.Context, token, id string) error {
	if strings.TrimSpace(id) == "" {
		return apperrors.Validation("product id is required")
	}
	if err := s.shop.DeleteProduct(ctx, token, id); err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	return nil
}
