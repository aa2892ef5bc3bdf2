// Package ports defines interfaces (hexagonal ports) between the console's
// services and the adapters that reach Redis, Postgres and the store API.
// Implementations live in internal/adapters and internal/data; orchestration in internal/service.
package ports

import (
	"context"

	domainauth "github.com/target/storefront-admin/internal/domain/auth"
)

// TokenStore holds the raw session token for exactly one browser session.
// Only the auth state component writes to it.
type TokenStore interface {
	// Get returns the stored token; ok is false when none is stored.
	Get(ctx context.Context) (token string, ok bool, err error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// TokenStores scopes a TokenStore to a browser session id.
type TokenStores interface {
	For(sessionID string) TokenStore
}

// TokenDecoder turns a token into claims. It never compares the expiry
// against the clock; callers decide what an expired token means.
// Failures are *domainauth.DecodeError.
type TokenDecoder interface {
	Decode(ctx context.Context, token string) (domainauth.Claims, error)
}

// LoginResult is the store API's answer to a successful login.
type LoginResult struct {
	Token    string `json:"token"`
	UserName string `json:"userName"`
	RoleName string `json:"roleName"`
}

// Authenticator exchanges credentials with the store API.
// It performs network calls; the auth state component never does.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (LoginResult, error)
	ForgotPassword(ctx context.Context, email string) error
}
