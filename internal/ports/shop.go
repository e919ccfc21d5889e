package ports

import (
	"context"

	"github.com/vp-garments/storefront/internal/domain/model"
)

// Credentials carries the login form fields forwarded to the upstream API.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupInput carries the signup form fields forwarded to the upstream API.
type SignupInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ShopAPI is the outbound contract against the remote garments REST API.
// The token parameter is the opaque bearer credential for the call; an
// empty token means the request goes out unauthenticated. Implementations
// must honor ctx cancellation on every call.
type ShopAPI interface {
	// Auth and profile (v1 surface).
	Login(ctx context.Context, creds Credentials) (token string, err error)
	Signup(ctx context.Context, in SignupInput) error
	CurrentUser(ctx context.Context, token string) (model.User, error)
	Profile(ctx context.Context, token string) (model.Profile, error)
	UpdateProfile(ctx context.Context, token string, in ProfileUpdate) error

	// Catalog (v2 surface).
	Products(ctx context.Context, token string, filter model.ProductFilter) ([]model.Product, error)
	ProductByID(ctx context.Context, token, id string) (model.Product, error)
	CreateProduct(ctx context.Context, token string, in model.ProductInput) (model.Product, error)
	UpdateProduct(ctx context.Context, token, id string, in model.ProductInput) (model.Product, error)
	DeleteProduct(ctx context.Context, token, id string) error

	// Cart (v2 surface).
	Cart(ctx context.Context, token string) (model.Cart, error)
	AddToCart(ctx context.Context, token, productID string, quantity int) error
	RemoveCartItem(ctx context.Context, token, productID string) error
}
