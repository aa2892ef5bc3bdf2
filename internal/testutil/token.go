package testutil

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	domainauth "github.com/target/storefront-admin/internal/domain/auth"
)

// TestSigningKey signs tokens minted by MintToken.
var TestSigningKey = []byte("storefront-admin-test-signing-key")

// TokenSpec describes a token for MintToken. Empty fields are omitted from the payload.
type TokenSpec struct {
	Name      string
	UserID    string
	Role      string
	ExpiresAt time.Time
	// Extra claims are merged last and may override the fields above.
	Extra map[string]any
}

// MintToken returns an HS256 token carrying the store API's claim names.
func MintToken(t TestingTB, spec TokenSpec) string {
	t.Helper()

	claims := jwt.MapClaims{}
	if spec.Name != "" {
		claims[domainauth.ClaimName] = spec.Name
	}
	if spec.UserID != "" {
		claims[domainauth.ClaimUserID] = spec.UserID
	}
	if spec.Role != "" {
		claims[domainauth.ClaimRole] = spec.Role
	}
	if !spec.ExpiresAt.IsZero() {
		claims[domainauth.ClaimExpiry] = spec.ExpiresAt.Unix()
	}
	for k, v := range spec.Extra {
		claims[k] = v
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(TestSigningKey)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

// AdminToken mints a token for an Admin that expires in an hour.
func AdminToken(t TestingTB) string {
	t.Helper()
	return MintToken(t, TokenSpec{Name: "Ada Admin", UserID: "u-admin", Role: "Admin", ExpiresAt: time.Now().Add(time.Hour)})
}

// DeliveryToken mints a token for a Delivery user that expires in an hour.
func DeliveryToken(t TestingTB) string {
	t.Helper()
	return MintToken(t, TokenSpec{Name: "Dan Driver", UserID: "u-delivery", Role: "Delivery", ExpiresAt: time.Now().Add(time.Hour)})
}
