package config

import (
	"strings"
	"time"
)

// BackendConfig describes the upstream REST API that owns all store data.
type BackendConfig struct {
	// BaseURL is the API root; endpoint paths such as "Product" are joined onto it.
	BaseURL string `env:"BASE_URL" envDefault:"https://localhost:7108/api"`

	Timeout time.Duration `env:"TIMEOUT" envDefault:"15s"`

	// Language is sent with product listings.
	Language string `env:"LANGUAGE" envDefault:"us"`

	// EnvelopePath is the JMESPath expression that selects the payload from a
	// {status, message, data} response envelope.
	EnvelopePath string `env:"ENVELOPE_PATH" envDefault:"data"`

	// InsecureSkipVerify disables TLS verification for self-signed dev certificates.
	InsecureSkipVerify bool `env:"INSECURE_SKIP_VERIFY" envDefault:"false"`
}

// Sanitize normalises backend settings.
func (b *BackendConfig) Sanitize() {
	b.BaseURL = strings.TrimRight(strings.TrimSpace(b.BaseURL), "/")
	if b.Timeout <= 0 {
		b.Timeout = 15 * time.Second
	}
	b.Language = strings.TrimSpace(b.Language)
	if b.Language == "" {
		b.Language = "us"
	}
	b.EnvelopePath = strings.TrimSpace(b.EnvelopePath)
	if b.EnvelopePath == "" {
		b.EnvelopePath = "data"
	}
}
