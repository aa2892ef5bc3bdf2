package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainauth "github.com/target/storefront-admin/internal/domain/auth"
	"github.com/target/storefront-admin/internal/ports"
)

// ErrTokenExpired reports a token whose exp is not after the evaluation time.
var ErrTokenExpired = &domainauth.DecodeError{Reason: domainauth.ReasonExpiry, Err: errors.New("token expired")}

// AuthStateOptions groups dependencies for AuthState.
type AuthStateOptions struct {
	Store   ports.TokenStore   // Required: the one key this state owns
	Decoder ports.TokenDecoder // Required
	Now     func() time.Time   // Optional: defaults to time.Now
}

// AuthState derives authentication status from a single stored token.
// It is the only writer of its TokenStore and never calls the store API.
type AuthState struct {
	store   ports.TokenStore
	decoder ports.TokenDecoder
	now     func() time.Time

	token   string
	state   domainauth.State
	dropped error
}

// NewAuthState constructs an AuthState in the unauthenticated state. Call Init to load the stored token.
func NewAuthState(opts AuthStateOptions) *AuthState {
	if opts.Store == nil {
		panic("TokenStore is required")
	}
	if opts.Decoder == nil {
		panic("TokenDecoder is required")
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &AuthState{
		store:   opts.Store,
		decoder: opts.Decoder,
		now:     now,
		state:   domainauth.Unauthenticated(),
	}
}

// Init reads the stored token and evaluates it. A token that fails to decode or
// has expired is cleared and the state reports unauthenticated; that is not an error.
// Errors are returned only when the store itself fails.
func (a *AuthState) Init(ctx context.Context) (domainauth.State, error) {
	a.token, a.state, a.dropped = "", domainauth.Unauthenticated(), nil

	tok, ok, err := a.store.Get(ctx)
	if err != nil {
		return a.state, fmt.Errorf("read token: %w", err)
	}
	if !ok || tok == "" {
		return a.state, nil
	}
	a.token = tok
	return a.evaluate(ctx)
}

// Login stores token unless it equals the current one, then re-evaluates.
func (a *AuthState) Login(ctx context.Context, token string) (domainauth.State, error) {
	if token == "" {
		return domainauth.Unauthenticated(), a.Logout(ctx)
	}
	a.dropped = nil
	if token != a.token {
		if err := a.store.Set(ctx, token); err != nil {
			return a.state, fmt.Errorf("store token: %w", err)
		}
		a.token = token
	}
	return a.evaluate(ctx)
}

// Logout clears the stored token and resets to unauthenticated.
func (a *AuthState) Logout(ctx context.Context) error {
	a.token, a.state = "", domainauth.Unauthenticated()
	if err := a.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}

// State returns the last evaluated state.
func (a *AuthState) State() domainauth.State { return a.state }

// Token returns the current raw token, empty when unauthenticated.
func (a *AuthState) Token() string {
	if !a.state.IsAuthenticated {
		return ""
	}
	return a.token
}

// Dropped returns why the last Init or Login discarded a stored token, or nil.
func (a *AuthState) Dropped() error { return a.dropped }

func (a *AuthState) evaluate(ctx context.Context) (domainauth.State, error) {
	claims, err := a.decoder.Decode(ctx, a.token)
	if err == nil && claims.ExpiredAt(a.now()) {
		err = ErrTokenExpired
	}
	if err != nil {
		a.dropped = err
		if clearErr := a.Logout(ctx); clearErr != nil {
			return a.state, clearErr
		}
		return a.state, nil
	}
	a.state = domainauth.Authenticated(claims.Identity)
	return a.state, nil
}
