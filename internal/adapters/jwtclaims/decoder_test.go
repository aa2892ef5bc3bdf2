package jwtclaims

import (
	"context"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"testing"
	"time"

	gooidc "github.com/coreos/go-oidc/v3/oidc"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/target/storefront-admin/internal/domain/auth"
	"github.com/target/storefront-admin/internal/testutil"
)

func decodeReason(t *testing.T, err error) string {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, domainauth.ErrDecode)
	var de *domainauth.DecodeError
	require.True(t, errors.As(err, &de))
	return de.Reason
}

func TestDecoder_None(t *testing.T) {
	d, err := New(Options{})
	require.NoError(t, err)
	assert.Equal(t, ModeNone, d.Mode())
	ctx := context.Background()

	t.Run("admin token", func(t *testing.T) {
		exp := time.Now().Add(time.Hour).Truncate(time.Second)
		tok := testutil.MintToken(t, testutil.TokenSpec{Name: "Ada", UserID: "u-1", Role: "Admin", ExpiresAt: exp})

		c, err := d.Decode(ctx, tok)
		require.NoError(t, err)
		assert.Equal(t, domainauth.Identity{Name: "Ada", UserID: "u-1", Role: domainauth.RoleAdmin}, c.Identity)
		assert.True(t, c.ExpiresAt.Equal(exp))
	})

	t.Run("signature is not checked", func(t *testing.T) {
		tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			domainauth.ClaimName:   "Eve",
			domainauth.ClaimUserID: "u-9",
			domainauth.ClaimRole:   "Delivery",
			domainauth.ClaimExpiry: time.Now().Add(time.Hour).Unix(),
		})
		signed, err := tok.SignedString([]byte("some-other-secret"))
		require.NoError(t, err)

		c, err := d.Decode(ctx, signed)
		require.NoError(t, err)
		assert.Equal(t, domainauth.RoleDelivery, c.Identity.Role)
	})

	t.Run("expired token still decodes", func(t *testing.T) {
		tok := testutil.MintToken(t, testutil.TokenSpec{Name: "Ada", UserID: "u-1", Role: "Admin", ExpiresAt: time.Now().Add(-time.Hour)})
		c, err := d.Decode(ctx, tok)
		require.NoError(t, err)
		assert.True(t, c.ExpiredAt(time.Now()))
	})

	for _, garbage := range []string{"", "   ", "not-a-token", "a.b.c", "eyJhbGciOiJIUzI1NiJ9..sig"} {
		t.Run("malformed "+garbage, func(t *testing.T) {
			c, err := d.Decode(ctx, garbage)
			assert.Equal(t, domainauth.ReasonMalformed, decodeReason(t, err))
			assert.Equal(t, domainauth.Claims{}, c)
		})
	}

	t.Run("missing role", func(t *testing.T) {
		tok := testutil.MintToken(t, testutil.TokenSpec{Name: "Ada", UserID: "u-1", ExpiresAt: time.Now().Add(time.Hour)})
		c, err := d.Decode(ctx, tok)
		assert.Equal(t, domainauth.ReasonMissingClaim, decodeReason(t, err))
		assert.Equal(t, domainauth.Claims{}, c)
	})

	t.Run("non-numeric expiry", func(t *testing.T) {
		tok := testutil.MintToken(t, testutil.TokenSpec{
			Name: "Ada", UserID: "u-1", Role: "Admin",
			Extra: map[string]any{domainauth.ClaimExpiry: "tomorrow"},
		})
		_, err := d.Decode(ctx, tok)
		assert.Equal(t, domainauth.ReasonExpiry, decodeReason(t, err))
	})

	t.Run("role list uses first entry", func(t *testing.T) {
		tok := testutil.MintToken(t, testutil.TokenSpec{
			Name: "Ada", UserID: "u-1", ExpiresAt: time.Now().Add(time.Hour),
			Extra: map[string]any{domainauth.ClaimRole: []string{"Delivery", "Admin"}},
		})
		c, err := d.Decode(ctx, tok)
		require.NoError(t, err)
		assert.Equal(t, domainauth.RoleDelivery, c.Identity.Role)
	})
}

func TestDecoder_HMAC(t *testing.T) {
	d, err := New(Options{Mode: ModeHMAC, Secret: testutil.TestSigningKey})
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("valid signature", func(t *testing.T) {
		c, err := d.Decode(ctx, testutil.AdminToken(t))
		require.NoError(t, err)
		assert.Equal(t, domainauth.RoleAdmin, c.Identity.Role)
	})

	t.Run("wrong secret", func(t *testing.T) {
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			domainauth.ClaimName:   "Ada",
			domainauth.ClaimUserID: "u-1",
			domainauth.ClaimRole:   "Admin",
			domainauth.ClaimExpiry: time.Now().Add(time.Hour).Unix(),
		}).SignedString([]byte("forged"))
		require.NoError(t, err)

		_, err = d.Decode(ctx, signed)
		assert.Equal(t, domainauth.ReasonSignature, decodeReason(t, err))
	})

	t.Run("alg none rejected", func(t *testing.T) {
		signed, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
			domainauth.ClaimName:   "Ada",
			domainauth.ClaimUserID: "u-1",
			domainauth.ClaimRole:   "Admin",
			domainauth.ClaimExpiry: time.Now().Add(time.Hour).Unix(),
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = d.Decode(ctx, signed)
		assert.Equal(t, domainauth.ReasonSignature, decodeReason(t, err))
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := d.Decode(ctx, "garbage")
		assert.Equal(t, domainauth.ReasonMalformed, decodeReason(t, err))
	})
}

func TestDecoder_JWKS(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	d, err := New(Options{
		Mode:   ModeJWKS,
		KeySet: &gooidc.StaticKeySet{PublicKeys: []crypto.PublicKey{&key.PublicKey}},
	})
	require.NoError(t, err)
	ctx := context.Background()

	claims := jwt.MapClaims{
		domainauth.ClaimName:   "Dan",
		domainauth.ClaimUserID: "u-2",
		domainauth.ClaimRole:   "Delivery",
		domainauth.ClaimExpiry: time.Now().Add(time.Hour).Unix(),
	}

	t.Run("valid RS256", func(t *testing.T) {
		signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
		require.NoError(t, err)

		c, err := d.Decode(ctx, signed)
		require.NoError(t, err)
		assert.Equal(t, domainauth.Identity{Name: "Dan", UserID: "u-2", Role: domainauth.RoleDelivery}, c.Identity)
	})

	t.Run("other key", func(t *testing.T) {
		other, err := rsa.GenerateKey(rand.Reader, 2048)
		require.NoError(t, err)
		signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(other)
		require.NoError(t, err)

		_, err = d.Decode(ctx, signed)
		assert.Equal(t, domainauth.ReasonSignature, decodeReason(t, err))
	})

	t.Run("hmac token", func(t *testing.T) {
		_, err := d.Decode(ctx, testutil.AdminToken(t))
		assert.Equal(t, domainauth.ReasonSignature, decodeReason(t, err))
	})

	t.Run("not a jws", func(t *testing.T) {
		_, err := d.Decode(ctx, "nope")
		assert.Equal(t, domainauth.ReasonMalformed, decodeReason(t, err))
	})
}

func TestNew_Errors(t *testing.T) {
	_, err := New(Options{Mode: ModeHMAC})
	require.Error(t, err)

	_, err = New(Options{Mode: ModeJWKS})
	require.Error(t, err)

	_, err = New(Options{Mode: "rsa"})
	require.Error(t, err)

	_, err = NewRemoteKeySet(context.Background(), " ")
	require.Error(t, err)
}
