// Package shopapi is the outbound adapter for the remote garments REST API.
// It owns URL construction, bearer auth, and error mapping; everything above
// it works with domain types only.
package shopapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vp-garments/storefront/internal/domain/model"
	"github.com/vp-garments/storefront/internal/ports"
)

// RequestError is returned for any non-2xx upstream response. It carries
// the status and the backend-supplied message; callers decide whether the
// message maps to a specific form field or a generic banner.
type RequestError struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("shop api: status %d", e.Status)
	}
	return fmt.Sprintf("shop api: status %d: %s", e.Status, e.Message)
}

// Config captures runtime configuration for the shop API client.
type Config struct {
	// BaseURL is the single upstream host, no trailing slash.
	BaseURL string
	// AuthPrefix is the path prefix for auth/profile endpoints (e.g. /api/v1).
	AuthPrefix string
	// ShopPrefix is the path prefix for catalog/cart endpoints (e.g. /api/v2).
	ShopPrefix string
	// Timeout bounds each upstream call when no client is supplied.
	Timeout time.Duration
	// Client overrides the HTTP client (tests).
	Client *http.Client
}

// Client talks to the remote garments REST API.
type Client struct {
	baseURL    string
	authPrefix string
	shopPrefix string
	client     *http.Client
}

// compile-time interface check
var _ ports.ShopAPI = (*Client)(nil)

// NewClient constructs a shop API client from config. Callers must provide a base URL.
func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, errors.New("shop api base URL is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:    base,
		authPrefix: cfg.AuthPrefix,
		shopPrefix: cfg.ShopPrefix,
		client:     hc,
	}, nil
}

// callParams groups the inputs of a single upstream call.
type callParams struct {
	Method string
	Path   string // already prefixed
	Query  url.Values
	Token  string // empty means unauthenticated
	Body   any    // JSON-encoded when non-nil
	Out    any    // JSON-decoded into when non-nil
}

// do issues one upstream request. The token is read from the caller per
// call, never cached, so a token change between calls is observed
// immediately. Non-2xx responses map to *RequestError.
func (c *Client) do(ctx context.Context, p callParams) error {
	u := c.baseURL + p.Path
	if len(p.Query) > 0 {
		u += "?" + p.Query.Encode()
	}

	var body io.Reader
	if p.Body != nil {
		data, err := json.Marshal(p.Body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, p.Method, u, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if p.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if p.Token != "" {
		req.Header.Set("Authorization", "Bearer "+p.Token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("shop api request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // nothing useful to do with a close error on a read body

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &RequestError{Status: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}

	if p.Out == nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(p.Out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// readErrorMessage extracts the backend-supplied message from an error body.
// The upstream uses "msg"; "message" and "error" are accepted as fallbacks.
func readErrorMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 64*1024))
	if err != nil {
		return ""
	}
	var payload struct {
		Msg     string `json:"msg"`
		Message string `json:"message"`
		Err     string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return strings.TrimSpace(string(data))
	}
	switch {
	case payload.Msg != "":
		return payload.Msg
	case payload.Message != "":
		return payload.Message
	default:
		return payload.Err
	}
}

// Login exchanges credentials for an opaque bearer token.
func (c *Client) Login(ctx context.Context, creds ports.Credentials) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	err := c.do(ctx, callParams{
		Method: http.MethodPost,
		Path:   c.authPrefix + "/login",
		Body:   creds,
		Out:    &out,
	})
	if err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", errors.New("login response missing token")
	}
	return out.Token, nil
}

// Signup registers a new account.
func (c *Client) Signup(ctx context.Context, in ports.SignupInput) error {
	return c.do(ctx, callParams{
		Method: http.MethodPost,
		Path:   c.authPrefix + "/signup",
		Body:   in,
	})
}

// CurrentUser resolves the user record (including role) for a token.
func (c *Client) CurrentUser(ctx context.Context, token string) (model.User, error) {
	var out model.User
	err := c.do(ctx, callParams{
		Method: http.MethodGet,
		Path:   c.authPrefix + "/user",
		Token:  token,
		Out:    &out,
	})
	return out, err
}

// Profile fetches the profile (editable fields plus order history).
func (c *Client) Profile(ctx context.Context, token string) (model.Profile, error) {
	var out model.Profile
	err := c.do(ctx, callParams{
		Method: http.MethodGet,
		Path:   c.authPrefix + "/profile",
		Token:  token,
		Out:    &out,
	})
	return out, err
}

// UpdateProfile saves editable profile fields.
func (c *Client) UpdateProfile(ctx context.Context, token string, in ports.ProfileUpdate) error {
	return c.do(ctx, callParams{
		Method: http.MethodPut,
		Path:   c.authPrefix + "/profile",
		Token:  token,
		Body:   in,
	})
}

// Products lists catalog products matching the filter.
func (c *Client) Products(ctx context.Context, token string, filter model.ProductFilter) ([]model.Product, error) {
	var out []model.Product
	err := c.do(ctx, callParams{
		Method: http.MethodGet,
		Path:   c.shopPrefix + "/products",
		Query:  filter.Query(),
		Token:  token,
		Out:    &out,
	})
	return out, err
}

// ProductByID fetches a single product.
func (c *Client) ProductByID(ctx context.Context, token, id string) (model.Product, error) {
	var out model.Product
	err := c.do(ctx, callParams{
		Method: http.MethodGet,
		Path:   c.shopPrefix + "/products/" + url.PathEscape(id),
		Token:  token,
		Out:    &out,
	})
	return out, err
}

// CreateProduct creates a product (admin only upstream).
func (c *Client) CreateProduct(ctx context.Context, token string, in model.ProductInput) (model.Product, error) {
	var out model.Product
	err := c.do(ctx, callParams{
		Method: http.MethodPost,
		Path:   c.shopPrefix + "/products",
		Token:  token,
		Body:   in,
		Out:    &out,
	})
	return out, err
}

// UpdateProduct updates a product by ID (admin only upstream).
func (c *Client) UpdateProduct(ctx context.Context, token, id string, in model.ProductInput) (model.Product, error) {
	var out model.Product
	err := c.do(ctx, callParams{
		Method: http.MethodPut,
		Path:   c.shopPrefix + "/products/" + url.PathEscape(id),
		Token:  token,
		Body:   in,
		Out:    &out,
	})
	return out, err
}

// DeleteProduct deletes a product by ID (admin only upstream).
func (c *Client) DeleteProduct(ctx context.Context, token, id string) error {
	return c.do(ctx, callParams{
		Method: http.MethodDelete,
		Path:   c.shopPrefix + "/products/" + url.PathEscape(id),
		Token:  token,
	})
}

// cartEnvelope matches the upstream cart payload, which nests the lines
// under data.products.
type cartEnvelope struct {
	Data struct {
		Products []model.CartItem `json:"products"`
	} `json:"data"`
}

// Cart fetches the current user's cart.
func (c *Client) Cart(ctx context.Context, token string) (model.Cart, error) {
	var out cartEnvelope
	err := c.do(ctx, callParams{
		Method: http.MethodGet,
		Path:   c.shopPrefix + "/cart",
		Token:  token,
		Out:    &out,
	})
	if err != nil {
		return nil, err
	}
	return model.Cart(out.Data.Products), nil
}

// AddToCart adds or re-quantifies a cart line. The upstream upserts by
// product, so this doubles as the quantity-update call.
func (c *Client) AddToCart(ctx context.Context, token, productID string, quantity int) error {
	return c.do(ctx, callParams{
		Method: http.MethodPost,
		Path:   c.shopPrefix + "/cart",
		Token:  token,
		Body:   map[string]any{"productId": productID, "quantity": quantity},
	})
}

// RemoveCartItem removes a cart line by product ID.
func (c *Client) RemoveCartItem(ctx context.Context, token, productID string) error {
	return c.do(ctx, callParams{
		Method: http.MethodDelete,
		Path:   c.shopPrefix + "/cart/item",
		Token:  token,
		Body:   map[string]string{"productId": productID},
	})
}
