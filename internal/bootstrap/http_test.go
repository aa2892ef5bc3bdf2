package bootstrap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/target/storefront-admin/config"
)

func TestRouterServices_MapsConfig(t *testing.T) {
	cfg := &HTTPServerConfig{
		Config: &config.AppConfig{
			IsDev: true,
			Auth:  config.AuthConfig{CookieName: "sf_session", SessionTTL: 2 * time.Hour},
			HTTP:  config.HTTPConfig{CookieDomain: "example.com"},
		},
	}

	rs := routerServices(cfg, discardLogger())

	assert.Equal(t, "sf_session", rs.Cookie.Name)
	assert.Equal(t, "example.com", rs.Cookie.Domain)
	assert.Equal(t, 2*time.Hour, rs.Cookie.MaxAge)
	assert.Equal(t, "example.com", rs.CSRF.CookieDomain)
	assert.True(t, rs.IsDev)
	assert.NotNil(t, rs.BearerContext)
	assert.Empty(t, rs.Health, "no cache or database configured")
}

func TestStartHTTPServer_NilConfig(t *testing.T) {
	_, err := StartHTTPServer(nil, nil)
	assert.Error(t, err)
}
