package httpx

import (
	"context"
	"errors"
	"sync"
	"time"

	domainauth "github.com/vp-garments/storefront/internal/domain/auth"
	"github.com/vp-garments/storefront/internal/domain/model"
	"github.com/vp-garments/storefront/internal/ports"
	"github.com/vp-garments/storefront/internal/service"
)

// fakeAuthService is a session-map backed AuthServiceInterface for
// middleware and handler tests.
type fakeAuthService struct {
	mu        sync.Mutex
	sessions  map[string]domainauth.Session
	roleHints map[string]domainauth.Role

	loginFunc  func(ctx context.Context, creds ports.Credentials) (*service.LoginResult, error)
	signupFunc func(ctx context.Context, in ports.SignupInput) error
	logouts    []string
}

func newFakeAuthService() *fakeAuthService {
	return &fakeAuthService{
		sessions:  make(map[string]domainauth.Session),
		roleHints: make(map[string]domainauth.Role),
	}
}

func (f *fakeAuthService) addSession(s domainauth.Session) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[s.ID] = s
}

func (f *fakeAuthService) setRoleHint(userID string, role domainauth.Role) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.roleHints[userID] = role
}

func (f *fakeAuthService) RoleHint(_ context.Context, userID string) domainauth.Role {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.roleHints[userID]
}

func (f *fakeAuthService) Login(ctx context.Context, creds ports.Credentials) (*service.LoginResult, error) {
	if f.loginFunc == nil {
		return nil, errors.New("login not configured")
	}
	return f.loginFunc(ctx, creds)
}

func (f *fakeAuthService) Signup(ctx context.Context, in ports.SignupInput) error {
	if f.signupFunc == nil {
		return errors.New("signup not configured")
	}
	return f.signupFunc(ctx, in)
}

func (f *fakeAuthService) GetSession(_ context.Context, sessionID string) (*domainauth.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[sessionID]
	if !ok {
		return nil, errors.New("session not found")
	}
	if time.Now().After(s.ExpiresAt) {
		return nil, errors.New("session expired")
	}
	return &s, nil
}

func (f *fakeAuthService) Logout(_ context.Context, sessionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logouts = append(f.logouts, sessionID)
	delete(f.sessions, sessionID)
	return nil
}

func adminSession(id string) domainauth.Session {
	return domainauth.Session{
		ID:        id,
		UserID:    "u-admin",
		Name:      "Alice Admin",
		Email:     "admin@shop.test",
		Role:      domainauth.RoleAdmin,
		Token:     "tok-admin",
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func customerSession(id string) domainauth.Session {
	return domainauth.Session{
		ID:        id,
		UserID:    "u-cust",
		Name:      "Carol Customer",
		Email:     "carol@shop.test",
		Role:      domainauth.RoleCustomer,
		Token:     "tok-cust",
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

// fakeShopAPI is a function-field fake for the upstream API, used to build
// real services behind the router.
type fakeShopAPI struct {
	loginFunc          func(ctx context.Context, creds ports.Credentials) (string, error)
	signupFunc         func(ctx context.Context, in ports.SignupInput) error
	currentUserFunc    func(ctx context.Context, token string) (model.User, error)
	profileFunc        func(ctx context.Context, token string) (model.Profile, error)
	updateProfileFunc  func(ctx context.Context, token string, in ports.ProfileUpdate) error
	productsFunc       func(ctx context.Context, token string, filter model.ProductFilter) ([]model.Product, error)
	productByIDFunc    func(ctx context.Context, token, id string) (model.Product, error)
	createProductFunc  func(ctx context.Context, token string, in model.ProductInput) (model.Product, error)
	updateProductFunc  func(ctx context.Context, token, id string, in model.ProductInput) (model.Product, error)
	deleteProductFunc  func(ctx context.Context, token, id string) error
	cartFunc           func(ctx context.Context, token string) (model.Cart, error)
	addToCartFunc      func(ctx context.Context, token, productID string, quantity int) error
	removeCartItemFunc func(ctx context.Context, token, productID string) error
}

var errShopNotConfigured = errors.New("shop fake not configured")

func (f *fakeShopAPI) Login(ctx context.Context, creds ports.Credentials) (string, error) {
	if f.loginFunc == nil {
		return "", errShopNotConfigured
	}
	return f.loginFunc(ctx, creds)
}

func (f *fakeShopAPI) Signup(ctx context.Context, in ports.SignupInput) error {
	if f.signupFunc == nil {
		return errShopNotConfigured
	}
	return f.signupFunc(ctx, in)
}

func (f *fakeShopAPI) CurrentUser(ctx context.Context, token string) (model.User, error) {
	if f.currentUserFunc == nil {
		return model.User{}, errShopNotConfigured
	}
	return f.currentUserFunc(ctx, token)
}

func (f *fakeShopAPI) Profile(ctx context.Context, token string) (model.Profile, error) {
	if f.profileFunc == nil {
		return model.Profile{}, errShopNotConfigured
	}
	return f.profileFunc(ctx, token)
}

func (f *fakeShopAPI) UpdateProfile(ctx context.Context, token string, in ports.ProfileUpdate) error {
	if f.updateProfileFunc == nil {
		return errShopNotConfigured
	}
	return f.updateProfileFunc(ctx, token, in)
}

func (f *fakeShopAPI) Products(ctx context.Context, token string, filter model.ProductFilter) ([]model.Product, error) {
	if f.productsFunc == nil {
		return nil, errShopNotConfigured
	}
	return f.productsFunc(ctx, token, filter)
}

func (f *fakeShopAPI) ProductByID(ctx context.Context, token, id string) (model.Product, error) {
	if f.productByIDFunc == nil {
		return model.Product{}, errShopNotConfigured
	}
	return f.productByIDFunc(ctx, token, id)
}

func (f *fakeShopAPI) CreateProduct(ctx context.Context, token string, in model.ProductInput) (model.Product, error) {
	if f.createProductFunc == nil {
		return model.Product{}, errShopNotConfigured
	}
	return f.createProductFunc(ctx, token, in)
}

func (f *fakeShopAPI) UpdateProduct(ctx context.Context, token, id string, in model.ProductInput) (model.Product, error) {
	if f.updateProductFunc == nil {
		return model.Product{}, errShopNotConfigured
	}
	return f.updateProductFunc(ctx, token, id, in)
}

func (f *fakeShopAPI) DeleteProduct(ctx context.Context, token, id string) error {
	if f.deleteProductFunc == nil {
		return errShopNotConfigured
	}
	return f.deleteProductFunc(ctx, token, id)
}

func (f *fakeShopAPI) Cart(ctx context.Context, token string) (model.Cart, error) {
	if f.cartFunc == nil {
		return nil, errShopNotConfigured
	}
	return f.cartFunc(ctx, token)
}

func (f *fakeShopAPI) AddToCart(ctx context.Context, token, productID string, quantity int) error {
	if f.addToCartFunc == nil {
		return errShopNotConfigured
	}
	return f.addToCartFunc(ctx, token, productID, quantity)
}

func (f *fakeShopAPI) RemoveCartItem(ctx context.Context, token, productID string) error {
	if f.removeCartItemFunc == nil {
		return errShopNotConfigured
	}
	return f.removeCartItemFunc(ctx, token, productID)
}

// memSessionStore is an in-memory ports.SessionStore for router-level tests.
type memSessionStore struct {
	mu       sync.Mutex
	sessions map[string]domainauth.Session
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[string]domainauth.Session)}
}

func (m *memSessionStore) Save(_ context.Context, sess domainauth.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sess.ID] = sess
	return nil
}

func (m *memSessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[id]
	if !ok {
		return domainauth.Session{}, errors.New("session not found")
	}
	return sess, nil
}

func (m *memSessionStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// memRoleCache is an in-memory ports.RoleCache.
type memRoleCache struct {
	mu    sync.Mutex
	roles map[string]domainauth.Role
}

func newMemRoleCache() *memRoleCache {
	return &memRoleCache{roles: make(map[string]domainauth.Role)}
}

func (m *memRoleCache) SetRole(_ context.Context, userID string, role domainauth.Role) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.roles[userID] = role
	return nil
}

func (m *memRoleCache) GetRole(_ context.Context, userID string) (domainauth.Role, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	role, ok := m.roles[userID]
	if !ok {
		return "", errors.New("role not found")
	}
	return role, nil
}

func (m *memRoleCache) DeleteRole(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.roles, userID)
	return nil
}
