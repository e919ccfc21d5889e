package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/vp-garments/storefront/internal/domain/model"
	apperrors "github.com/vp-garments/storefront/internal/errors"
	"github.com/vp-garments/storefront/internal/ports"
)

// CartService orchestrates cart reads and line mutations. All durable cart
// state lives upstream; mutations that fail are simply not applied.
type CartService struct {
	shop ports.ShopAPI
}

// NewCartService constructs a new CartService.
func NewCartService(shop ports.ShopAPI) *CartService {
	return &CartService{shop: shop}
}

// Fetch returns the current user's cart.
func (s *CartService) Fetch(ctx context.Context, token string) (model.Cart, error) {
	cart, err := s.shop.Cart(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("fetch cart: %w", err)
	}
	return cart, nil
}

// Add adds a product to the cart, or updates its quantity when already
// present (upstream upsert semantics).
func (s *CartService) Add(ctx context.Context, token, productID string, quantity int) error {
	if strings.TrimSpace(productID) == "" {
		return apperrors.Validation("product id is required")
	}
	if quantity <= 0 {
		return apperrors.ValidationField("quantity", "Quantity must be greater than 0.")
	}
	if err := s.shop.AddToCart(ctx, token, productID, quantity); err != nil {
		return fmt.Errorf("add to cart: %w", err)
	}
	return nil
}

// Remove deletes a cart line by product ID.
func (s *CartService) Remove(ctx context.Context, token, productID string) error {
	if strings.TrimSpace(productID) == "" {
		return apperrors.Validation("product id is required")
	}
	if err := s.shop.RemoveCartItem(ctx, token, productID); err != nil {
		return fmt.Errorf("remove cart item: %w", err)
	}
	return nil
}
