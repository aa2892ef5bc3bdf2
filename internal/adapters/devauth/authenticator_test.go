package devauth

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/target/storefront-admin/internal/adapters/jwtclaims"
	domainauth "github.com/target/storefront-admin/internal/domain/auth"
	apperrors "github.com/target/storefront-admin/internal/errors"
)

func TestParseUser(t *testing.T) {
	tests := []struct {
		entry   string
		want    User
		wantErr bool
	}{
		{entry: "Ada@Example.com:pw:Admin:Ada Admin", want: User{Email: "ada@example.com", Password: "pw", Role: domainauth.RoleAdmin, Name: "Ada Admin"}},
		{entry: "dan@example.com:pw:Delivery", want: User{Email: "dan@example.com", Password: "pw", Role: domainauth.RoleDelivery, Name: "dan@example.com"}},
		{entry: "dan@example.com:pw", wantErr: true},
		{entry: "dan@example.com::Delivery", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.entry, func(t *testing.T) {
			got, err := ParseUser(tt.entry)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuthenticator_Login(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	secret := []byte("dev-secret")
	a, err := New(Config{
		Users:    []User{{Email: "ada@example.com", Password: "pw", Role: domainauth.RoleAdmin, Name: "Ada"}},
		Secret:   secret,
		TokenTTL: time.Hour,
		Now:      func() time.Time { return now },
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("token verifies with the shared secret", func(t *testing.T) {
		res, err := a.Login(ctx, " ADA@example.com", "pw")
		require.NoError(t, err)
		assert.Equal(t, "Admin", res.RoleName)

		dec, err := jwtclaims.New(jwtclaims.Options{Mode: jwtclaims.ModeHMAC, Secret: secret})
		require.NoError(t, err)
		claims, err := dec.Decode(ctx, res.Token)
		require.NoError(t, err)
		assert.Equal(t, domainauth.Identity{Name: "Ada", UserID: "ada@example.com", Role: domainauth.RoleAdmin}, claims.Identity)
		assert.True(t, claims.ExpiresAt.Equal(now.Add(time.Hour)))
	})

	for _, tc := range []struct{ email, pw string }{
		{"ada@example.com", "wrong"},
		{"nobody@example.com", "pw"},
	} {
		t.Run("rejects "+tc.email+"/"+tc.pw, func(t *testing.T) {
			_, err := a.Login(ctx, tc.email, tc.pw)
			assert.True(t, apperrors.IsUnauthorized(err))
		})
	}

	assert.NoError(t, a.ForgotPassword(ctx, "ada@example.com"))
}

func TestNew_RequiresUsers(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}
