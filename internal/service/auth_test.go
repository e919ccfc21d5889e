package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/vp-garments/storefront/internal/domain/auth"
	"github.com/vp-garments/storefront/internal/domain/model"
	"github.com/vp-garments/storefront/internal/ports"
)

func newAuthFixture(shop *fakeShopAPI) (*AuthService, *memSessionStore, *memRoleCache) {
	sessions := newMemSessionStore()
	roles := newMemRoleCache()
	svc := NewAuthService(AuthServiceOptions{
		Shop:       shop,
		Sessions:   sessions,
		Roles:      roles,
		SessionTTL: time.Hour,
	})
	return svc, sessions, roles
}

func TestLogin_AdminRoleYieldsAdminState(t *testing.T) {
	shop := &fakeShopAPI{
		loginFunc: func(_ context.Context, creds ports.Credentials) (string, error) {
			assert.Equal(t, "admin@shop.test", creds.Email)
			return "tok-admin", nil
		},
		currentUserFunc: func(_ context.Context, token string) (model.User, error) {
			assert.Equal(t, "tok-admin", token)
			return model.User{ID: "u1", Name: "Ada", Email: "admin@shop.test", Role: "admin"}, nil
		},
	}
	svc, sessions, roles := newAuthFixture(shop)

	result, err := svc.Login(context.Background(), ports.Credentials{Email: "admin@shop.test", Password: "pw"})
	require.NoError(t, err)

	state := result.Session.State()
	assert.True(t, state.IsAuthenticated)
	assert.True(t, state.IsAdmin)
	assert.Equal(t, "tok-admin", result.Session.Token)

	// Session persisted and role hint written.
	stored, err := sessions.Get(context.Background(), result.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, domainauth.RoleAdmin, stored.Role)
	hint, err := roles.GetRole(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, domainauth.RoleAdmin, hint)
}

func TestLogin_NonAdminRoleYieldsCustomerState(t *testing.T) {
	shop := &fakeShopAPI{
		loginFunc: func(context.Context, ports.Credentials) (string, error) { return "tok", nil },
		currentUserFunc: func(context.Context, string) (model.User, error) {
			return model.User{ID: "u2", Role: "customer"}, nil
		},
	}
	svc, _, _ := newAuthFixture(shop)

	result, err := svc.Login(context.Background(), ports.Credentials{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)

	state := result.Session.State()
	assert.True(t, state.IsAuthenticated)
	assert.False(t, state.IsAdmin)
}

func TestLogin_UserLookupFailureFailsClosed(t *testing.T) {
	shop := &fakeShopAPI{
		loginFunc: func(context.Context, ports.Credentials) (string, error) { return "tok", nil },
		currentUserFunc: func(context.Context, string) (model.User, error) {
			return model.User{}, errors.New("upstream 500")
		},
	}
	svc, sessions, _ := newAuthFixture(shop)

	_, err := svc.Login(context.Background(), ports.Credentials{Email: "a@b.c", Password: "pw"})
	require.Error(t, err)
	assert.Empty(t, sessions.sessions, "no session must exist after a failed role resolution")
}

func TestLogin_RequiresCredentials(t *testing.T) {
	svc, _, _ := newAuthFixture(&fakeShopAPI{})

	_, err := svc.Login(context.Background(), ports.Credentials{Password: "pw"})
	assert.Error(t, err)
	_, err = svc.Login(context.Background(), ports.Credentials{Email: "a@b.c"})
	assert.Error(t, err)
}

func TestResolve_FailClosed(t *testing.T) {
	svc, sessions, _ := newAuthFixture(&fakeShopAPI{})

	// No session ID.
	assert.Equal(t, domainauth.Denied(), svc.Resolve(context.Background(), ""))

	// Unknown session ID.
	assert.Equal(t, domainauth.Denied(), svc.Resolve(context.Background(), "missing"))

	// Expired session.
	require.NoError(t, sessions.Save(context.Background(), domainauth.Session{
		ID:        "expired",
		Role:      domainauth.RoleAdmin,
		ExpiresAt: time.Now().Add(-time.Minute),
	}))
	assert.Equal(t, domainauth.Denied(), svc.Resolve(context.Background(), "expired"))
}

func TestResolve_ValidSession(t *testing.T) {
	svc, sessions, _ := newAuthFixture(&fakeShopAPI{})

	require.NoError(t, sessions.Save(context.Background(), domainauth.Session{
		ID:        "sid",
		Role:      domainauth.RoleAdmin,
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	state := svc.Resolve(context.Background(), "sid")
	assert.True(t, state.IsAuthenticated)
	assert.True(t, state.IsAdmin)
}

func TestResolve_NoUpstreamCall(t *testing.T) {
	// Resolution must read only the session store; the upstream API is not
	// consulted per navigation.
	shop := &fakeShopAPI{
		currentUserFunc: func(context.Context, string) (model.User, error) {
			t.Fatal("resolve must not hit the upstream API")
			return model.User{}, nil
		},
	}
	svc, sessions, _ := newAuthFixture(shop)

	require.NoError(t, sessions.Save(context.Background(), domainauth.Session{
		ID:        "sid",
		Role:      domainauth.RoleCustomer,
		ExpiresAt: time.Now().Add(time.Hour),
	}))
	_ = svc.Resolve(context.Background(), "sid")
}

func TestLogout_RemovesSessionAndHint(t *testing.T) {
	shop := &fakeShopAPI{
		loginFunc: func(context.Context, ports.Credentials) (string, error) { return "tok", nil },
		currentUserFunc: func(context.Context, string) (model.User, error) {
			return model.User{ID: "u1", Role: "admin"}, nil
		},
	}
	svc, sessions, roles := newAuthFixture(shop)

	result, err := svc.Login(context.Background(), ports.Credentials{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), result.Session.ID))

	assert.Empty(t, sessions.sessions)
	_, err = roles.GetRole(context.Background(), "u1")
	assert.Error(t, err, "role hint must be dropped on logout")

	assert.Equal(t, domainauth.Denied(), svc.Resolve(context.Background(), result.Session.ID))
}

func TestLogout_EmptySessionIDIsNoop(t *testing.T) {
	svc, _, _ := newAuthFixture(&fakeShopAPI{})
	assert.NoError(t, svc.Logout(context.Background(), ""))
}

func TestSignup_ForwardsUpstreamError(t *testing.T) {
	upstreamErr := errors.New("email already exists")
	shop := &fakeShopAPI{
		signupFunc: func(context.Context, ports.SignupInput) error { return upstreamErr },
	}
	svc, _, _ := newAuthFixture(shop)

	err := svc.Signup(context.Background(), ports.SignupInput{Name: "n", Email: "e@x.y", Password: "secret"})
	assert.ErrorIs(t, err, upstreamErr)
}
