package bootstrap

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/target/storefront-admin/config"
	"github.com/target/storefront-admin/internal/adapters/devauth"
	"github.com/target/storefront-admin/internal/adapters/jwtclaims"
	authmocks "github.com/target/storefront-admin/internal/mocks/auth"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBuildDecoder(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		auth    config.AuthConfig
		want    jwtclaims.Mode
		wantErr bool
	}{
		{name: "none", auth: config.AuthConfig{VerifyMode: config.VerifyModeNone}, want: jwtclaims.ModeNone},
		{name: "blank defaults to none", auth: config.AuthConfig{}, want: jwtclaims.ModeNone},
		{name: "hmac", auth: config.AuthConfig{VerifyMode: config.VerifyModeHMAC, HMACSecret: "s3cret"}, want: jwtclaims.ModeHMAC},
		{name: "hmac without secret", auth: config.AuthConfig{VerifyMode: config.VerifyModeHMAC}, wantErr: true},
		{name: "jwks", auth: config.AuthConfig{VerifyMode: config.VerifyModeJWKS, JWKSURL: "https://issuer.example.com/keys"}, want: jwtclaims.ModeJWKS},
		{name: "jwks without url", auth: config.AuthConfig{VerifyMode: config.VerifyModeJWKS}, wantErr: true},
		{name: "unknown", auth: config.AuthConfig{VerifyMode: "rot13"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec, err := BuildDecoder(ctx, tt.auth, discardLogger())
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, dec.Mode())
		})
	}
}

func TestBuildAuthService_RequiresDependencies(t *testing.T) {
	decoder := authmocks.NewStaticDecoder()
	backend := &authmocks.MockAuthenticator{}

	_, err := BuildAuthService(AuthConfig{Decoder: decoder, Backend: backend, Logger: discardLogger()})
	assert.ErrorContains(t, err, "redis")
}

func TestValidateConfig(t *testing.T) {
	base := func() config.AppConfig {
		return config.AppConfig{
			Auth:    config.AuthConfig{VerifyMode: config.VerifyModeNone},
			Backend: config.BackendConfig{BaseURL: "https://api.example.com/api"},
		}
	}

	cfg := base()
	require.NoError(t, ValidateConfig(&cfg))

	cfg = base()
	cfg.Auth.VerifyMode = config.VerifyModeHMAC
	assert.ErrorContains(t, ValidateConfig(&cfg), "AUTH_HMAC_SECRET")

	cfg = base()
	cfg.Auth.VerifyMode = config.VerifyModeJWKS
	assert.ErrorContains(t, ValidateConfig(&cfg), "AUTH_JWKS_URL")

	cfg = base()
	cfg.Backend.InsecureSkipVerify = true
	assert.Error(t, ValidateConfig(&cfg))
	cfg.IsDev = true
	assert.NoError(t, ValidateConfig(&cfg))

	cfg = base()
	cfg.Auth.DevLogin = true
	cfg.Auth.DevUsers = []string{"ada@example.com:pw:Admin"}
	assert.ErrorContains(t, ValidateConfig(&cfg), "development mode")
	cfg.IsDev = true
	assert.NoError(t, ValidateConfig(&cfg))
	cfg.Auth.VerifyMode = config.VerifyModeJWKS
	cfg.Auth.JWKSURL = "https://issuer.example.com/jwks"
	assert.ErrorContains(t, ValidateConfig(&cfg), "AUTH_DEV_LOGIN")
	cfg.Auth.VerifyMode = config.VerifyModeNone
	cfg.Auth.DevUsers = nil
	assert.ErrorContains(t, ValidateConfig(&cfg), "AUTH_DEV_USERS")

	assert.Error(t, ValidateConfig(nil))
}

func TestNewAuthenticator(t *testing.T) {
	api, err := newBackendClient(config.BackendConfig{BaseURL: "https://api.example.com/api"}, discardLogger())
	require.NoError(t, err)

	got, err := newAuthenticator(config.AuthConfig{}, api, discardLogger())
	require.NoError(t, err)
	assert.Same(t, api, got)

	got, err = newAuthenticator(config.AuthConfig{
		DevLogin: true,
		DevUsers: []string{"ada@example.com:pw:Admin"},
	}, api, discardLogger())
	require.NoError(t, err)
	assert.IsType(t, &devauth.Authenticator{}, got)

	_, err = newAuthenticator(config.AuthConfig{DevLogin: true, DevUsers: []string{"broken"}}, api, discardLogger())
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, parseLevel("chatty"))
}
