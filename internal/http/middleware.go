package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	domainauth "github.com/target/storefront-admin/internal/domain/auth"
	"github.com/target/storefront-admin/internal/domain/routing"
	"github.com/target/storefront-admin/internal/service"
)

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &respWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Bool("htmx", IsHTMX(r)),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// browserRequestKey is an unexported context key type for browser request detection.
type browserRequestKey struct{}

// BrowserDetection returns a middleware that records whether a request came
// from a browser, so handlers can pick between HTML and JSON responses.
func BrowserDetection() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), browserRequestKey{}, isBrowserRequest(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IsBrowserRequest returns true if the current request is from a browser.
func IsBrowserRequest(r *http.Request) bool {
	if isBrowser, ok := r.Context().Value(browserRequestKey{}).(bool); ok {
		return isBrowser
	}
	return isBrowserRequest(r)
}

// isBrowserRequest treats htmx requests and requests accepting text/html as
// browser traffic. The JSON endpoints and static assets never are.
func isBrowserRequest(r *http.Request) bool {
	switch {
	case r.URL.Path == "/auth/status", r.URL.Path == "/healthz":
		return false
	case strings.HasPrefix(r.URL.Path, "/static/"):
		return false
	case IsHTMX(r):
		return true
	}
	accept := r.Header.Get("Accept")
	if accept == "" {
		return true
	}
	return strings.Contains(accept, "text/html")
}

// SessionResolver resolves a browser session id into auth state.
type SessionResolver interface {
	Resolve(ctx context.Context, sessionID string) (service.Session, error)
}

// SessionConfig configures ResolveSession.
type SessionConfig struct {
	Resolver SessionResolver
	Cookie   CookieOptions
	// BearerContext attaches the session token for outbound store API calls.
	BearerContext func(ctx context.Context, token string) context.Context
	Logger        *slog.Logger
}

// ResolveSession reads the session cookie, resolves it through the auth
// service and stores the result in the request context. Every request gets a
// session value; an absent or rejected cookie resolves to unauthenticated.
// A cookie whose token was dropped is cleared on the response.
func ResolveSession(cfg SessionConfig) func(http.Handler) http.Handler {
	if cfg.Resolver == nil {
		panic("SessionResolver is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cookieName := cfg.Cookie.name()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sid string
			if c, err := r.Cookie(cookieName); err == nil {
				sid = c.Value
			}

			sess, err := cfg.Resolver.Resolve(r.Context(), sid)
			if err != nil {
				// Token store outage: serve the request as signed out but keep the cookie.
				logger.WarnContext(r.Context(), "session resolution failed", "error", err)
				sess = service.Session{State: domainauth.Unauthenticated()}
			} else if sid != "" && !sess.State.IsAuthenticated {
				clearCookie(w, r, cfg.Cookie)
			}

			ctx := SetSessionInContext(r.Context(), sess)
			if sess.State.IsAuthenticated {
				ctx = service.WithActor(ctx, *sess.State.Identity)
				if cfg.BearerContext != nil {
					ctx = cfg.BearerContext(ctx, sess.Token)
				}
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Guard applies the route guard to top-level page requests: the handler runs
// only when routing.Decide renders the requested path, otherwise the browser
// is redirected. Trailing-slash variants redirect to their canonical path.
func Guard() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			d := routing.Decide(StateFromContext(r.Context()), r.URL.Path)
			if !d.Render() {
				redirectTo(w, r, d.Redirect)
				return
			}
			if canonical := routing.Normalize(r.URL.Path); canonical != r.URL.Path {
				redirectTo(w, r, canonical)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireRole protects actions and fragments that sit below the routed pages.
// Unauthenticated browsers are sent to the login page; a signed-in user with
// another role gets 403.
func RequireRole(role domainauth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			state := StateFromContext(r.Context())
			if !state.IsAuthenticated {
				if IsBrowserRequest(r) {
					redirectTo(w, r, routing.PathLogin)
					return
				}
				WriteError(w, ErrorParams{
					Code:    http.StatusUnauthorized,
					ErrCode: "authentication_required",
					Err:     errors.New("authentication required"),
				})
				return
			}
			if state.Role() != role {
				if IsHTMX(r) {
					HTMX(w).NoSwap().Trigger(toastEvent, toastPayload("You are not allowed to do that", toastError))
					w.WriteHeader(http.StatusForbidden)
					return
				}
				WriteError(w, ErrorParams{
					Code:    http.StatusForbidden,
					ErrCode: "insufficient_permissions",
					Err:     errors.New("insufficient permissions"),
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// redirectTo sends the browser to path: HX-Redirect for htmx, 303 otherwise.
func redirectTo(w http.ResponseWriter, r *http.Request, path string) {
	if IsHTMX(r) {
		HTMX(w).Redirect(path)
		return
	}
	http.Redirect(w, r, path, http.StatusSeeOther)
}
