package httpx

import (
	"context"

	domainauth "github.com/target/storefront-admin/internal/domain/auth"
	"github.com/target/storefront-admin/internal/domain/routing"
	"github.com/target/storefront-admin/internal/service"
)

// sessionKey is an unexported context key type to avoid collisions across packages.
type sessionKey struct{}

// SetSessionInContext returns a child context that carries the resolved session.
func SetSessionInContext(ctx context.Context, session service.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// GetSessionFromContext returns the resolved session and whether the session
// middleware ran for this request.
func GetSessionFromContext(ctx context.Context) (service.Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(service.Session)
	return s, ok
}

// StateFromContext returns the auth state of the request, unauthenticated when absent.
func StateFromContext(ctx context.Context) domainauth.State {
	if s, ok := GetSessionFromContext(ctx); ok {
		return s.State
	}
	return domainauth.Unauthenticated()
}

// PresentationFromContext maps the request's auth state onto a console layout.
func PresentationFromContext(ctx context.Context) routing.Presentation {
	return routing.PresentationFor(StateFromContext(ctx))
}
