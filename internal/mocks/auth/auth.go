// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.
package auth

import (
	"context"
	"errors"
	"sync"

	domainauth "github.com/target/storefront-admin/internal/domain/auth"
	"github.com/target/storefront-admin/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.TokenStore    = (*MemoryTokenStore)(nil)
	_ ports.TokenStores   = (*MemoryTokenStores)(nil)
	_ ports.TokenDecoder  = (*StaticDecoder)(nil)
	_ ports.Authenticator = (*MockAuthenticator)(nil)
)

// MemoryTokenStores keeps tokens for many sessions in memory and counts writes per session.
type MemoryTokenStores struct {
	mu     sync.Mutex
	tokens map[string]string
	writes map[string]int
}

// NewMemoryTokenStores creates an empty store set.
func NewMemoryTokenStores() *MemoryTokenStores {
	return &MemoryTokenStores{
		tokens: make(map[string]string),
		writes: make(map[string]int),
	}
}

// For returns the store for one session.
func (m *MemoryTokenStores) For(sessionID string) ports.TokenStore {
	return &MemoryTokenStore{parent: m, id: sessionID}
}

// Seed stores a token without counting it as a write.
func (m *MemoryTokenStores) Seed(sessionID, token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[sessionID] = token
}

// Writes returns how many Set calls a session received.
func (m *MemoryTokenStores) Writes(sessionID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes[sessionID]
}

// Peek returns the stored token for a session.
func (m *MemoryTokenStores) Peek(sessionID string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	tok, ok := m.tokens[sessionID]
	return tok, ok
}

// MemoryTokenStore is one session's view of MemoryTokenStores.
// A zero MemoryTokenStore is not usable; build one with NewMemoryTokenStore or MemoryTokenStores.For.
type MemoryTokenStore struct {
	parent *MemoryTokenStores
	id     string
}

// NewMemoryTokenStore returns a standalone single-session store.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{parent: NewMemoryTokenStores(), id: "single"}
}

// Writes returns the number of Set calls on this store.
func (s *MemoryTokenStore) Writes() int { return s.parent.Writes(s.id) }

func (s *MemoryTokenStore) Get(_ context.Context) (string, bool, error) {
	tok, ok := s.parent.Peek(s.id)
	return tok, ok, nil
}

func (s *MemoryTokenStore) Set(_ context.Context, token string) error {
	if token == "" {
		return errors.New("token cannot be empty")
	}
	s.parent.mu.Lock()
	defer s.parent.mu.Unlock()
	s.parent.tokens[s.id] = token
	s.parent.writes[s.id]++
	return nil
}

func (s *MemoryTokenStore) Clear(_ context.Context) error {
	s.parent.mu.Lock()
	defer s.parent.mu.Unlock()
	delete(s.parent.tokens, s.id)
	return nil
}

// StaticDecoder decodes tokens from a fixed table. Unknown tokens fail as malformed.
type StaticDecoder struct {
	Claims map[string]domainauth.Claims
	Calls  int
}

// NewStaticDecoder creates a decoder with an empty table.
func NewStaticDecoder() *StaticDecoder {
	return &StaticDecoder{Claims: make(map[string]domainauth.Claims)}
}

func (d *StaticDecoder) Decode(_ context.Context, token string) (domainauth.Claims, error) {
	d.Calls++
	c, ok := d.Claims[token]
	if !ok {
		return domainauth.Claims{}, &domainauth.DecodeError{Reason: domainauth.ReasonMalformed}
	}
	return c, nil
}

// MockAuthenticator simulates the store API login endpoints.
type MockAuthenticator struct {
	LoginFunc          func(ctx context.Context, email, password string) (ports.LoginResult, error)
	ForgotPasswordFunc func(ctx context.Context, email string) error

	// Users maps "email\x00password" to the login result when LoginFunc is nil.
	Users map[string]ports.LoginResult
	Calls int
}

// ErrInvalidCredentials is returned by MockAuthenticator for unknown users.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AddUser registers credentials for the default Login behavior.
func (m *MockAuthenticator) AddUser(email, password string, res ports.LoginResult) {
	if m.Users == nil {
		m.Users = make(map[string]ports.LoginResult)
	}
	m.Users[email+"\x00"+password] = res
}

func (m *MockAuthenticator) Login(ctx context.Context, email, password string) (ports.LoginResult, error) {
	m.Calls++
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	res, ok := m.Users[email+"\x00"+password]
	if !ok {
		return ports.LoginResult{}, ErrInvalidCredentials
	}
	return res, nil
}

func (m *MockAuthenticator) ForgotPassword(ctx context.Context, email string) error {
	if m.ForgotPasswordFunc != nil {
		return m.ForgotPasswordFunc(ctx, email)
	}
	return nil
}
