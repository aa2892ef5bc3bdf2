package config

import (
	"fmt"
	"strings"
	"time"
)

// VerifyMode selects how session token signatures are checked before claims are trusted.
type VerifyMode string

const (
	// VerifyModeNone decodes claims without checking the signature.
	// The backend still verifies the token on every API call.
	VerifyModeNone VerifyMode = "none"
	// VerifyModeHMAC checks an HS256/384/512 signature against a shared secret.
	VerifyModeHMAC VerifyMode = "hmac"
	// VerifyModeJWKS checks the signature against a remote JSON Web Key Set.
	VerifyModeJWKS VerifyMode = "jwks"
)

// UnmarshalText implements encoding.TextUnmarshaler for VerifyMode.
func (m *VerifyMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(strings.TrimSpace(string(text)))
	switch v {
	case "none", "hmac", "jwks":
		*m = VerifyMode(v)
		return nil
	default:
		return fmt.Errorf("invalid VerifyMode: %q (valid options: none, hmac, jwks)", v)
	}
}

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// VerifyMode determines how token signatures are checked.
	VerifyMode VerifyMode `env:"AUTH_VERIFY_MODE" envDefault:"none"`

	// HMACSecret is the shared signing secret (VerifyMode=hmac).
	HMACSecret string `env:"AUTH_HMAC_SECRET"`

	// JWKSURL points at the issuer's key set (VerifyMode=jwks).
	JWKSURL string `env:"AUTH_JWKS_URL"`

	// SessionTTL bounds how long a stored token survives in Redis.
	// The token's own exp claim still decides whether it is usable.
	SessionTTL time.Duration `env:"AUTH_SESSION_TTL" envDefault:"24h"`

	// CookieName is the browser cookie that carries the session id.
	CookieName string `env:"AUTH_COOKIE_NAME" envDefault:"session_id"`

	// KeyPrefix namespaces token keys in Redis.
	KeyPrefix string `env:"AUTH_KEY_PREFIX" envDefault:"session:"`

	// DevLogin swaps the store API login for locally signed tokens (DEV only).
	DevLogin bool `env:"AUTH_DEV_LOGIN" envDefault:"false"`

	// DevUsers lists dev logins as "email:password:Role[:Name]".
	DevUsers []string `env:"AUTH_DEV_USERS" envSeparator:","`
}

// Sanitize applies defaults for blank values.
func (a *AuthConfig) Sanitize() {
	if a.SessionTTL <= 0 {
		a.SessionTTL = 24 * time.Hour
	}
	a.CookieName = strings.TrimSpace(a.CookieName)
	if a.CookieName == "" {
		a.CookieName = "session_id"
	}
	if a.KeyPrefix == "" {
		a.KeyPrefix = "session:"
	}
	if a.VerifyMode == "" {
		a.VerifyMode = VerifyModeNone
	}
}
