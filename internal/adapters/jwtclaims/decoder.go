// Package jwtclaims turns store API session tokens into identity claims.
package jwtclaims

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	gooidc "github.com/coreos/go-oidc/v3/oidc"
	"github.com/golang-jwt/jwt/v5"

	domainauth "github.com/target/storefront-admin/internal/domain/auth"
	"github.com/target/storefront-admin/internal/ports"
)

var _ ports.TokenDecoder = (*Decoder)(nil)

// Mode selects how a token's signature is treated before its claims are read.
type Mode string

const (
	// ModeNone reads claims without checking the signature.
	ModeNone Mode = "none"
	// ModeHMAC checks an HS256/384/512 signature with a shared secret.
	ModeHMAC Mode = "hmac"
	// ModeJWKS checks the signature against a key set.
	ModeJWKS Mode = "jwks"
)

// Options configures a Decoder.
type Options struct {
	Mode Mode
	// Secret is required for ModeHMAC.
	Secret []byte
	// KeySet is required for ModeJWKS. Use NewRemoteKeySet for a JWKS URL.
	KeySet gooidc.KeySet
	Logger *slog.Logger
}

// Decoder implements ports.TokenDecoder. Claim validation (exp, nbf, iat) is
// left to the caller; Decode only reports whether the token carries usable claims.
type Decoder struct {
	mode   Mode
	secret []byte
	keys   gooidc.KeySet
	parser *jwt.Parser
	logger *slog.Logger
}

// New creates a Decoder for the given mode.
func New(opts Options) (*Decoder, error) {
	if opts.Mode == "" {
		opts.Mode = ModeNone
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	d := &Decoder{mode: opts.Mode, logger: logger.With("component", "jwtclaims")}
	switch opts.Mode {
	case ModeNone:
		d.parser = jwt.NewParser(jwt.WithoutClaimsValidation(), jwt.WithJSONNumber())
	case ModeHMAC:
		if len(opts.Secret) == 0 {
			return nil, errors.New("hmac mode requires a secret")
		}
		d.secret = opts.Secret
		d.parser = jwt.NewParser(
			jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}),
			jwt.WithoutClaimsValidation(),
			jwt.WithJSONNumber(),
		)
	case ModeJWKS:
		if opts.KeySet == nil {
			return nil, errors.New("jwks mode requires a key set")
		}
		d.keys = opts.KeySet
	default:
		return nil, fmt.Errorf("unknown decode mode %q", opts.Mode)
	}
	return d, nil
}

// NewRemoteKeySet returns a key set that fetches and caches keys from jwksURL.
// ctx bounds background key refreshes and should live as long as the process.
func NewRemoteKeySet(ctx context.Context, jwksURL string) (gooidc.KeySet, error) {
	if strings.TrimSpace(jwksURL) == "" {
		return nil, errors.New("jwks URL is required")
	}
	return gooidc.NewRemoteKeySet(ctx, jwksURL), nil
}

// Mode reports the decoder's verification mode.
func (d *Decoder) Mode() Mode { return d.mode }

// Decode parses token into Claims. Every failure is a *domainauth.DecodeError.
func (d *Decoder) Decode(ctx context.Context, token string) (domainauth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return domainauth.Claims{}, &domainauth.DecodeError{Reason: domainauth.ReasonMalformed, Err: errors.New("empty token")}
	}

	var (
		claims map[string]any
		err    error
	)
	switch d.mode {
	case ModeHMAC:
		claims, err = d.parseHMAC(token)
	case ModeJWKS:
		claims, err = d.parseJWKS(ctx, token)
	default:
		claims, err = d.parseUnverified(token)
	}
	if err != nil {
		d.logger.DebugContext(ctx, "token rejected", "mode", d.mode, "error", err)
		return domainauth.Claims{}, err
	}

	c, err := domainauth.ClaimsFromMap(claims)
	if err != nil {
		d.logger.DebugContext(ctx, "token claims rejected", "mode", d.mode, "error", err)
		return domainauth.Claims{}, err
	}
	return c, nil
}

func (d *Decoder) parseUnverified(token string) (map[string]any, error) {
	mc := jwt.MapClaims{}
	if _, _, err := d.parser.ParseUnverified(token, mc); err != nil {
		return nil, &domainauth.DecodeError{Reason: domainauth.ReasonMalformed, Err: err}
	}
	return map[string]any(mc), nil
}

func (d *Decoder) parseHMAC(token string) (map[string]any, error) {
	mc := jwt.MapClaims{}
	_, err := d.parser.ParseWithClaims(token, mc, func(*jwt.Token) (any, error) {
		return d.secret, nil
	})
	if err != nil {
		reason := domainauth.ReasonSignature
		if errors.Is(err, jwt.ErrTokenMalformed) {
			reason = domainauth.ReasonMalformed
		}
		return nil, &domainauth.DecodeError{Reason: reason, Err: err}
	}
	return map[string]any(mc), nil
}

func (d *Decoder) parseJWKS(ctx context.Context, token string) (map[string]any, error) {
	if strings.Count(token, ".") != 2 {
		return nil, &domainauth.DecodeError{Reason: domainauth.ReasonMalformed, Err: errors.New("token is not a compact JWS")}
	}
	payload, err := d.keys.VerifySignature(ctx, token)
	if err != nil {
		return nil, &domainauth.DecodeError{Reason: domainauth.ReasonSignature, Err: err}
	}
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()
	var claims map[string]any
	if err := dec.Decode(&claims); err != nil {
		return nil, &domainauth.DecodeError{Reason: domainauth.ReasonMalformed, Err: err}
	}
	return claims, nil
}
