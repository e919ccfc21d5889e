package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vp-garments/storefront/internal/domain/model"
	"github.com/vp-garments/storefront/internal/ports"
)

func TestProfileOverview_FetchesProfileAndCart(t *testing.T) {
	shop := &fakeShopAPI{
		profileFunc: func(_ context.Context, token string) (model.Profile, error) {
			assert.Equal(t, "tok", token)
			return model.Profile{Name: "Ada", Email: "a@b.c", Orders: []model.Order{{ID: "o1"}}}, nil
		},
		cartFunc: func(context.Context, string) (model.Cart, error) {
			return model.Cart{{Quantity: 1}, {Quantity: 2}}, nil
		},
	}
	svc := NewProfileService(shop)

	overview, err := svc.Overview(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "Ada", overview.Profile.Name)
	assert.Len(t, overview.Profile.Orders, 1)
	assert.Equal(t, 2, overview.CartCount)
}

func TestProfileOverview_FailsWhenEitherCallFails(t *testing.T) {
	upstreamErr := errors.New("upstream 502")
	shop := &fakeShopAPI{
		profileFunc: func(context.Context, string) (model.Profile, error) {
			return model.Profile{Name: "Ada"}, nil
		},
		cartFunc: func(context.Context, string) (model.Cart, error) {
			return nil, upstreamErr
		},
	}
	svc := NewProfileService(shop)

	_, err := svc.Overview(context.Background(), "tok")
	assert.ErrorIs(t, err, upstreamErr)
}

func TestProfileUpdate_Forwards(t *testing.T) {
	var got ports.ProfileUpdate
	shop := &fakeShopAPI{
		updateProfileFunc: func(_ context.Context, token string, in ports.ProfileUpdate) error {
			assert.Equal(t, "tok", token)
			got = in
			return nil
		},
	}
	svc := NewProfileService(shop)

	require.NoError(t, svc.Update(context.Background(), "tok", ports.ProfileUpdate{Name: "Ada", Email: "a@b.c"}))
	assert.Equal(t, "Ada", got.Name)
}
