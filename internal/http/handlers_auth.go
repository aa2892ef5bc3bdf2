package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/target/storefront-admin/internal/domain/routing"
	apperrors "github.com/target/storefront-admin/internal/errors"
	"github.com/target/storefront-admin/internal/service"
)

// DefaultSessionCookieName names the browser session cookie.
const DefaultSessionCookieName = "session_id"

// AuthServiceInterface defines the interface for auth service operations.
type AuthServiceInterface interface {
	SessionResolver
	SignIn(ctx context.Context, previousID, email, password string) (service.Session, error)
	SignOut(ctx context.Context, sessionID string) error
	ForgotPassword(ctx context.Context, email string) error
}

var _ AuthServiceInterface = (*service.AuthService)(nil)

// CookieOptions controls the session cookie.
type CookieOptions struct {
	Name   string
	Domain string
	// MaxAge should match the token store TTL; zero makes a browser-session cookie.
	MaxAge time.Duration
}

func (o CookieOptions) name() string {
	if o.Name == "" {
		return DefaultSessionCookieName
	}
	return o.Name
}

// AuthHandlers provides HTTP handlers for authentication operations.
type AuthHandlers struct {
	Svc    AuthServiceInterface
	Cookie CookieOptions
	// UI renders the login page when a plain form post fails.
	UI     *UIHandlers
	Logger *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// LoginPage renders the sign-in form.
// GET /login.
func (h *AuthHandlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.UI.Page(w, r, PageSpec{
		Meta: loginMeta,
		Fetch: func(_ context.Context, data map[string]any) error {
			data["ResetSent"] = r.URL.Query().Get("reset") == "sent"
			return nil
		},
	})
}

//nolint:gochecknoglobals // static page metadata
var loginMeta = PageMeta{Title: "Storefront Admin - Sign in", PageTitle: "Sign in", CurrentPage: PageLogin}

// Login exchanges the submitted credentials for a session and sends the
// browser to the home page of the console the token's role selects.
// POST /login.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	email := formString(r, "email")
	password := r.FormValue("password")

	sess, err := h.Svc.SignIn(r.Context(), h.sessionID(r), email, password)
	if err != nil {
		h.loginFailed(w, r, email, err)
		return
	}

	setSessionCookie(w, r, h.Cookie, sess.ID)
	redirectTo(w, r, routing.Home(routing.PresentationFor(sess.State)))
}

func (h *AuthHandlers) loginFailed(w http.ResponseWriter, r *http.Request, email string, err error) {
	status := errorStatus(err)
	h.logger().InfoContext(r.Context(), "sign in failed", "status", status, "error", err)

	msg := apperrors.UserMessage(err)
	if apperrors.IsUnauthorized(err) || apperrors.GetCode(err) == apperrors.ErrCodeNotFound {
		msg = "Email or password is incorrect"
	}

	if IsHTMX(r) {
		payload := toastPayload(msg, toastError)
		if field := apperrors.GetField(err); field != "" {
			payload["field"] = field
		}
		HTMX(w).NoSwap().Trigger(toastEvent, payload)
		w.WriteHeader(status)
		return
	}

	data := basePageData(r, loginMeta)
	data["Email"] = email
	data["Error"] = true
	data["ErrorMessage"] = msg
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	h.UI.renderPage(w, r, data)
}

// ForgotPassword asks the store API to mail a reset link.
// POST /login/forgot-password.
func (h *AuthHandlers) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	err := h.Svc.ForgotPassword(r.Context(), formString(r, "email"))
	h.UI.respondMutation(w, r, mutation{
		Err:     err,
		Success: "If the email has an account, a reset link is on its way",
		Return:  routing.PathLogin + "?reset=sent",
	})
}

// Logout clears the session token and cookie.
// POST /logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if sid := h.sessionID(r); sid != "" {
		if err := h.Svc.SignOut(r.Context(), sid); err != nil {
			h.logger().WarnContext(r.Context(), "logout failed", "error", err)
		}
	}
	clearCookie(w, r, h.Cookie)
	redirectTo(w, r, routing.PathLogin)
}

// Status returns the current authentication status.
// GET /auth/status.
func (h *AuthHandlers) Status(w http.ResponseWriter, r *http.Request) {
	state := StateFromContext(r.Context())
	body := map[string]any{
		"authenticated": state.IsAuthenticated,
		"presentation":  routing.PresentationFor(state),
	}
	if state.Identity != nil {
		body["identity"] = state.Identity
	}
	WriteJSON(w, http.StatusOK, body)
}

func (h *AuthHandlers) sessionID(r *http.Request) string {
	if c, err := r.Cookie(h.Cookie.name()); err == nil {
		return c.Value
	}
	return ""
}

// homeFor returns the landing page of the request's console.
func homeFor(r *http.Request) string {
	return routing.Home(routing.PresentationFor(StateFromContext(r.Context())))
}

// setSessionCookie writes the session cookie.
func setSessionCookie(w http.ResponseWriter, r *http.Request, opts CookieOptions, sessionID string) {
	c := &http.Cookie{
		Name:     opts.name(),
		Value:    sessionID,
		Path:     "/",
		Domain:   opts.Domain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
	}
	if opts.MaxAge > 0 {
		c.MaxAge = int(opts.MaxAge.Seconds())
	}
	http.SetCookie(w, c)
}

// clearCookie clears the session cookie by setting it to expire immediately.
// It mirrors the attributes used when setting it so browsers match the cookie.
func clearCookie(w http.ResponseWriter, r *http.Request, opts CookieOptions) {
	http.SetCookie(w, &http.Cookie{
		Name:     opts.name(),
		Value:    "",
		Path:     "/",
		Domain:   opts.Domain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}

// safeRedirectPath ensures the provided redirect is a same-origin relative path
// starting with "/" and not an absolute URL. Returns "/" when invalid.
func safeRedirectPath(candidate string) string {
	if candidate == "" {
		return "/"
	}
	u, err := url.Parse(candidate)
	if err != nil || u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") {
		return "/"
	}
	return candidate
}

// refererPath returns the same-host Referer as a relative path, or "/".
func refererPath(r *http.Request) string {
	u, err := url.Parse(r.Header.Get("Referer"))
	if err != nil || u.Host != r.Host {
		return "/"
	}
	return safeRedirectPath(u.RequestURI())
}
