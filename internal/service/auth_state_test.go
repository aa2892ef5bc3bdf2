package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/target/storefront-admin/internal/domain/auth"
	mockauth "github.com/target/storefront-admin/internal/mocks/auth"
	"github.com/target/storefront-admin/internal/testutil"
)

var (
	adminIdentity    = domainauth.Identity{Name: "Ada", UserID: "u-1", Role: domainauth.RoleAdmin}
	deliveryIdentity = domainauth.Identity{Name: "Dan", UserID: "u-2", Role: domainauth.RoleDelivery}
)

// newDecoder returns a decoder knowing "admin", "delivery", "expired" and "edge" tokens
// relative to testutil.TestTime().
func newDecoder() *mockauth.StaticDecoder {
	d := mockauth.NewStaticDecoder()
	now := testutil.TestTime()
	d.Claims["admin"] = domainauth.Claims{Identity: adminIdentity, ExpiresAt: now.Add(time.Hour)}
	d.Claims["delivery"] = domainauth.Claims{Identity: deliveryIdentity, ExpiresAt: now.Add(time.Hour)}
	d.Claims["expired"] = domainauth.Claims{Identity: adminIdentity, ExpiresAt: now.Add(-time.Second)}
	d.Claims["edge"] = domainauth.Claims{Identity: adminIdentity, ExpiresAt: now}
	d.Claims["customer"] = domainauth.Claims{
		Identity:  domainauth.Identity{Name: "Cy", UserID: "u-3", Role: "Customer"},
		ExpiresAt: now.Add(time.Hour),
	}
	return d
}

func newTestState(store *mockauth.MemoryTokenStore, dec *mockauth.StaticDecoder) *AuthState {
	return NewAuthState(AuthStateOptions{Store: store, Decoder: dec, Now: testutil.FixedTimeFunc(testutil.TestTime())})
}

func TestAuthState_InitEmptyStore(t *testing.T) {
	store := mockauth.NewMemoryTokenStore()
	dec := newDecoder()
	st := newTestState(store, dec)

	state, err := st.Init(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domainauth.State{IsAuthenticated: false, Identity: nil}, state)
	assert.Zero(t, dec.Calls, "empty store must not decode anything")
	assert.Empty(t, st.Token())
}

func TestAuthState_InitValidToken(t *testing.T) {
	store := mockauth.NewMemoryTokenStore()
	require.NoError(t, store.Set(context.Background(), "admin"))
	st := newTestState(store, newDecoder())

	state, err := st.Init(context.Background())
	require.NoError(t, err)
	assert.True(t, state.IsAuthenticated)
	require.NotNil(t, state.Identity)
	assert.Equal(t, adminIdentity, *state.Identity)
	assert.Equal(t, "admin", st.Token())
	assert.NoError(t, st.Dropped())
}

func TestAuthState_InitDropsUnusableTokens(t *testing.T) {
	tests := []struct {
		name   string
		token  string
		reason string
	}{
		{name: "expired", token: "expired", reason: domainauth.ReasonExpiry},
		{name: "expiry equal to now", token: "edge", reason: domainauth.ReasonExpiry},
		{name: "malformed", token: "garbage", reason: domainauth.ReasonMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := mockauth.NewMemoryTokenStore()
			require.NoError(t, store.Set(ctx, tt.token))
			st := newTestState(store, newDecoder())

			state, err := st.Init(ctx)
			require.NoError(t, err)
			assert.Equal(t, domainauth.Unauthenticated(), state)

			_, ok, err := store.Get(ctx)
			require.NoError(t, err)
			assert.False(t, ok, "unusable token must be cleared")

			var de *domainauth.DecodeError
			require.ErrorAs(t, st.Dropped(), &de)
			assert.Equal(t, tt.reason, de.Reason)
		})
	}
}

func TestAuthState_UnknownRoleStaysAuthenticated(t *testing.T) {
	ctx := context.Background()
	store := mockauth.NewMemoryTokenStore()
	require.NoError(t, store.Set(ctx, "customer"))
	st := newTestState(store, newDecoder())

	state, err := st.Init(ctx)
	require.NoError(t, err)
	assert.True(t, state.IsAuthenticated)
	assert.Equal(t, domainauth.Role("Customer"), state.Role())
}

func TestAuthState_LoginTwiceWritesOnce(t *testing.T) {
	ctx := context.Background()
	store := mockauth.NewMemoryTokenStore()
	st := newTestState(store, newDecoder())
	_, err := st.Init(ctx)
	require.NoError(t, err)

	first, err := st.Login(ctx, "delivery")
	require.NoError(t, err)
	second, err := st.Login(ctx, "delivery")
	require.NoError(t, err)

	assert.Equal(t, 1, store.Writes())
	assert.Equal(t, first, second)
	assert.Equal(t, deliveryIdentity, *second.Identity)
}

func TestAuthState_LoginAfterInitWithSameTokenDoesNotWrite(t *testing.T) {
	ctx := context.Background()
	stores := mockauth.NewMemoryTokenStores()
	stores.Seed("s1", "admin")
	st := NewAuthState(AuthStateOptions{Store: stores.For("s1"), Decoder: newDecoder(), Now: testutil.FixedTimeFunc(testutil.TestTime())})

	_, err := st.Init(ctx)
	require.NoError(t, err)
	state, err := st.Login(ctx, "admin")
	require.NoError(t, err)

	assert.True(t, state.IsAuthenticated)
	assert.Zero(t, stores.Writes("s1"))
}

func TestAuthState_LoginWithUnusableToken(t *testing.T) {
	ctx := context.Background()
	store := mockauth.NewMemoryTokenStore()
	st := newTestState(store, newDecoder())

	state, err := st.Login(ctx, "expired")
	require.NoError(t, err)
	assert.False(t, state.IsAuthenticated)

	_, ok, err := store.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, st.Token())
}

func TestAuthState_Logout(t *testing.T) {
	ctx := context.Background()
	store := mockauth.NewMemoryTokenStore()
	st := newTestState(store, newDecoder())

	_, err := st.Login(ctx, "admin")
	require.NoError(t, err)
	require.NoError(t, st.Logout(ctx))

	_, ok, err := store.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, domainauth.Unauthenticated(), st.State())

	again, err := st.Init(ctx)
	require.NoError(t, err)
	assert.False(t, again.IsAuthenticated)
}

func TestAuthState_LoginEmptyTokenLogsOut(t *testing.T) {
	ctx := context.Background()
	store := mockauth.NewMemoryTokenStore()
	st := newTestState(store, newDecoder())
	_, err := st.Login(ctx, "admin")
	require.NoError(t, err)

	state, err := st.Login(ctx, "")
	require.NoError(t, err)
	assert.False(t, state.IsAuthenticated)
	_, ok, _ := store.Get(ctx)
	assert.False(t, ok)
}

func TestNewAuthState_PanicsWithoutDeps(t *testing.T) {
	assert.Panics(t, func() { NewAuthState(AuthStateOptions{Decoder: newDecoder()}) })
	assert.Panics(t, func() { NewAuthState(AuthStateOptions{Store: mockauth.NewMemoryTokenStore()}) })
}
