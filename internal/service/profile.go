package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/vp-garments/storefront/internal/domain/model"
	"github.com/vp-garments/storefront/internal/ports"
)

// ProfileService orchestrates profile reads and updates.
type ProfileService struct {
	shop ports.ShopAPI
}

// NewProfileService constructs a new ProfileService.
func NewProfileService(shop ports.ShopAPI) *ProfileService {
	return &ProfileService{shop: shop}
}

// ProfileOverview is the data backing the profile page: the editable
// profile plus a cart summary for the sidebar.
type ProfileOverview struct {
	Profile   model.Profile
	CartCount int
}

// Get returns the profile (editable fields plus order history).
func (s *ProfileService) Get(ctx context.Context, token string) (model.Profile, error) {
	profile, err := s.shop.Profile(ctx, token)
	if err != nil {
		return model.Profile{}, fmt.Errorf("fetch profile: %w", err)
	}
	return profile, nil
}

// Overview fetches the profile and the cart concurrently. Both calls share
// the request context, so a disconnecting client cancels both.
func (s *ProfileService) Overview(ctx context.Context, token string) (ProfileOverview, error) {
	var out ProfileOverview

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		profile, err := s.shop.Profile(gctx, token)
		if err != nil {
			return fmt.Errorf("fetch profile: %w", err)
		}
		out.Profile = profile
		return nil
	})
	g.Go(func() error {
		cart, err := s.shop.Cart(gctx, token)
		if err != nil {
			return fmt.Errorf("fetch cart: %w", err)
		}
		out.CartCount = len(cart)
		return nil
	})

	if err := g.Wait(); err != nil {
		return ProfileOverview{}, err
	}
	return out, nil
}

// Update saves editable profile fields.
func (s *ProfileService) Update(ctx context.Context, token string, in ports.ProfileUpdate) error {
	if err := s.shop.UpdateProfile(ctx, token, in); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}
