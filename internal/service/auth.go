package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/target/storefront-admin/internal/domain/auth"
	"github.com/target/storefront-admin/internal/domain/model"
	apperrors "github.com/target/storefront-admin/internal/errors"
	"github.com/target/storefront-admin/internal/ports"
)

// SessionDeps groups the session token dependencies of AuthService.
type SessionDeps struct {
	Stores  ports.TokenStores  // Required
	Decoder ports.TokenDecoder // Required
	Now     func() time.Time   // Optional: defaults to time.Now
}

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Sessions SessionDeps
	Backend  ports.Authenticator // Required: store API login endpoints
	Audit    ports.AuditTrail    // Optional: records sign-in outcomes
	Logger   *slog.Logger        // Optional: structured logger
}

// AuthService maps browser sessions onto AuthState instances and drives the
// store API login flow.
type AuthService struct {
	stores  ports.TokenStores
	decoder ports.TokenDecoder
	now     func() time.Time
	backend ports.Authenticator
	audit   auditRecorder
	logger  *slog.Logger
}

// Session is the resolved view of one browser session.
type Session struct {
	ID    string
	State domainauth.State
	// Token is the raw session token, empty unless State is authenticated.
	Token string
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	if opts.Sessions.Stores == nil {
		panic("TokenStores is required")
	}
	if opts.Sessions.Decoder == nil {
		panic("TokenDecoder is required")
	}
	if opts.Backend == nil {
		panic("Authenticator is required")
	}
	now := opts.Sessions.Now
	if now == nil {
		now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "auth")

	return &AuthService{
		stores:  opts.Sessions.Stores,
		decoder: opts.Sessions.Decoder,
		now:     now,
		backend: opts.Backend,
		audit:   newAuditRecorder(opts.Audit, logger),
		logger:  logger,
	}
}

func (s *AuthService) stateFor(sessionID string) *AuthState {
	return NewAuthState(AuthStateOptions{
		Store:   s.stores.For(sessionID),
		Decoder: s.decoder,
		Now:     s.now,
	})
}

// Resolve evaluates the token stored for sessionID. An empty id is unauthenticated
// without touching the store. Tokens that fail to decode or have expired are
// cleared silently.
func (s *AuthService) Resolve(ctx context.Context, sessionID string) (Session, error) {
	if sessionID == "" {
		return Session{State: domainauth.Unauthenticated()}, nil
	}

	st := s.stateFor(sessionID)
	state, err := st.Init(ctx)
	if err != nil {
		return Session{ID: sessionID, State: domainauth.Unauthenticated()}, fmt.Errorf("resolve session: %w", err)
	}
	if dropped := st.Dropped(); dropped != nil {
		s.logger.DebugContext(ctx, "session token dropped", "error", dropped)
		s.audit.recordAs(ctx, domainauth.Identity{}, model.AuditSessionDropped, "", map[string]any{"reason": dropReason(dropped)})
	}
	return Session{ID: sessionID, State: state, Token: st.Token()}, nil
}

// SignIn exchanges credentials with the store API and stores the returned token
// under a fresh session id. The previous session, if any, is cleared.
func (s *AuthService) SignIn(ctx context.Context, previousID, email, password string) (Session, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return Session{}, apperrors.ValidationField("email", "Email is required")
	}
	if password == "" {
		return Session{}, apperrors.ValidationField("password", "Password is required")
	}

	res, err := s.backend.Login(ctx, email, password)
	if err != nil {
		s.audit.recordAs(ctx, domainauth.Identity{Name: email}, model.AuditLoginFailed, email, map[string]any{"reason": apperrors.GetCode(err)})
		return Session{}, fmt.Errorf("login: %w", err)
	}

	if previousID != "" {
		if err := s.stateFor(previousID).Logout(ctx); err != nil {
			s.logger.WarnContext(ctx, "clear previous session failed", "error", err)
		}
	}

	sessionID := uuid.NewString()
	st := s.stateFor(sessionID)
	state, err := st.Login(ctx, res.Token)
	if err != nil {
		return Session{}, fmt.Errorf("store session: %w", err)
	}
	if !state.IsAuthenticated {
		s.audit.recordAs(ctx, domainauth.Identity{Name: email}, model.AuditLoginFailed, email, map[string]any{"reason": dropReason(st.Dropped())})
		return Session{}, apperrors.Unauthorized("The store API issued a session this console cannot use")
	}

	s.audit.recordAs(ctx, *state.Identity, model.AuditLoginSucceeded, email, nil)
	s.logger.InfoContext(ctx, "signed in", "user_id", state.Identity.UserID, "role", state.Identity.Role)
	return Session{ID: sessionID, State: state, Token: st.Token()}, nil
}

// SignOut clears the session's token.
func (s *AuthService) SignOut(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	st := s.stateFor(sessionID)
	state, err := st.Init(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "read session before sign out failed", "error", err)
	}
	if err := st.Logout(ctx); err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	if state.Identity != nil {
		s.audit.recordAs(ctx, *state.Identity, model.AuditLogout, "", nil)
	}
	return nil
}

// Token returns the bearer token for sessionID, empty when the session is not authenticated.
func (s *AuthService) Token(ctx context.Context, sessionID string) (string, error) {
	sess, err := s.Resolve(ctx, sessionID)
	return sess.Token, err
}

// ForgotPassword asks the store API to send a reset email.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return apperrors.ValidationField("email", "Email is required")
	}
	if err := s.backend.ForgotPassword(ctx, email); err != nil {
		return fmt.Errorf("forgot password: %w", err)
	}
	s.audit.recordAs(ctx, domainauth.Identity{Name: email}, model.AuditPasswordReset, email, nil)
	return nil
}

// Inspect decodes token with the configured decoder and evaluates it at the
// current time, without storing anything.
func (s *AuthService) Inspect(ctx context.Context, token string) (domainauth.Claims, domainauth.State, error) {
	claims, err := s.decoder.Decode(ctx, token)
	if err != nil {
		return domainauth.Claims{}, domainauth.Unauthenticated(), err
	}
	if claims.ExpiredAt(s.now()) {
		return claims, domainauth.Unauthenticated(), ErrTokenExpired
	}
	return claims, domainauth.Authenticated(claims.Identity), nil
}

func dropReason(err error) string {
	var de *domainauth.DecodeError
	if errors.As(err, &de) {
		return de.Reason
	}
	if err == nil {
		return ""
	}
	return "unknown"
}
