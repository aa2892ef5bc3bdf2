// Package devauth provides a config-driven Authenticator for local development.
// It signs its own session tokens so the console can be exercised without the
// store API's login endpoint.
package devauth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domainauth "github.com/target/storefront-admin/internal/domain/auth"
	apperrors "github.com/target/storefront-admin/internal/errors"
	"github.com/target/storefront-admin/internal/ports"
)

var _ ports.Authenticator = (*Authenticator)(nil)

const defaultTokenTTL = 8 * time.Hour

// User is one local login. Entries are written "email:password:Role[:Name]".
type User struct {
	Email    string
	Password string
	Role     domainauth.Role
	Name     string
}

// ParseUser parses a single "email:password:Role[:Name]" entry.
func ParseUser(entry string) (User, error) {
	parts := strings.SplitN(strings.TrimSpace(entry), ":", 4)
	if len(parts) < 3 {
		return User{}, fmt.Errorf("dev auth: user %q must be email:password:Role[:Name]", entry)
	}
	u := User{
		Email:    strings.ToLower(strings.TrimSpace(parts[0])),
		Password: parts[1],
		Role:     domainauth.Role(strings.TrimSpace(parts[2])),
	}
	if len(parts) == 4 {
		u.Name = strings.TrimSpace(parts[3])
	}
	if u.Email == "" || u.Password == "" || u.Role == "" {
		return User{}, fmt.Errorf("dev auth: user %q has a blank field", entry)
	}
	if u.Name == "" {
		u.Name = u.Email
	}
	return u, nil
}

// Config controls the dev authenticator.
type Config struct {
	Users []User
	// Secret signs tokens (HS256). Leave empty to use a per-process random key,
	// which only verifies when the decoder skips signature checks.
	Secret   []byte
	TokenTTL time.Duration // default 8h when zero
	Now      func() time.Time
	Logger   *slog.Logger
}

// Authenticator implements ports.Authenticator against a fixed user list.
type Authenticator struct {
	users  map[string]User
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger
}

// New constructs a dev authenticator from Config.
func New(cfg Config) (*Authenticator, error) {
	if len(cfg.Users) == 0 {
		return nil, errors.New("dev auth: at least one user is required")
	}
	a := &Authenticator{
		users:  make(map[string]User, len(cfg.Users)),
		secret: cfg.Secret,
		ttl:    cfg.TokenTTL,
		now:    cfg.Now,
		logger: cfg.Logger,
	}
	for _, u := range cfg.Users {
		a.users[strings.ToLower(u.Email)] = u
	}
	if a.ttl <= 0 {
		a.ttl = defaultTokenTTL
	}
	if a.now == nil {
		a.now = time.Now
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}
	a.logger = a.logger.With("component", "devauth")
	if len(a.secret) == 0 {
		a.secret = make([]byte, 32)
		if _, err := rand.Read(a.secret); err != nil {
			return nil, fmt.Errorf("dev auth: generate signing key: %w", err)
		}
	}
	return a, nil
}

// Login checks the password and returns a freshly signed token carrying the
// store API's claim names.
func (a *Authenticator) Login(ctx context.Context, email, password string) (ports.LoginResult, error) {
	u, ok := a.users[strings.ToLower(strings.TrimSpace(email))]
	if !ok || subtle.ConstantTimeCompare([]byte(u.Password), []byte(password)) != 1 {
		return ports.LoginResult{}, apperrors.Unauthorized("Invalid email or password")
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		domainauth.ClaimName:   u.Name,
		domainauth.ClaimUserID: u.Email,
		domainauth.ClaimRole:   string(u.Role),
		domainauth.ClaimExpiry: a.now().Add(a.ttl).Unix(),
	}).SignedString(a.secret)
	if err != nil {
		return ports.LoginResult{}, fmt.Errorf("dev auth: sign token: %w", err)
	}

	a.logger.InfoContext(ctx, "dev login", "email", u.Email, "role", u.Role)
	return ports.LoginResult{Token: signed, UserName: u.Name, RoleName: string(u.Role)}, nil
}

// ForgotPassword only logs; there is no mailbox behind dev users.
func (a *Authenticator) ForgotPassword(ctx context.Context, email string) error {
	a.logger.InfoContext(ctx, "dev password reset requested", "email", email)
	return nil
}
