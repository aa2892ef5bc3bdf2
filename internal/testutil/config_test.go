package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultTestDBConfig(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want TestDBConfig
	}{
		{
			name: "local compose defaults",
			want: TestDBConfig{Host: "localhost", Port: "55432", User: "storefront", Password: "storefront", DBName: "storefront_admin"},
		},
		{
			name: "ci overrides",
			env:  map[string]string{"TEST_DB_HOST": "postgres", "TEST_DB_PORT": "5432", "TEST_DB_NAME": "ci"},
			want: TestDBConfig{Host: "postgres", Port: "5432", User: "storefront", Password: "storefront", DBName: "ci"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{"TEST_DB_HOST", "TEST_DB_PORT", "TEST_DB_USER", "TEST_DB_PASSWORD", "TEST_DB_NAME"} {
				t.Setenv(k, tt.env[k])
			}
			assert.Equal(t, tt.want, DefaultTestDBConfig())
		})
	}
}

func TestTestDBConfig_DSN(t *testing.T) {
	cfg := TestDBConfig{Host: "db", Port: "5432", User: "u", Password: "p", DBName: "n"}
	assert.Equal(t, "postgres://u:p@db:5432/n?sslmode=disable", cfg.dsn())
}
