// Package routing decides which console a request is rendered in.
//
// The decision is recomputed from auth state and the requested path on every
// request; nothing about the current layout is persisted. The role it reads
// comes from the session token, so this is a navigation convenience. The store
// API still authorizes every call it receives.
package routing

import (
	"strings"

	"github.com/target/storefront-admin/internal/domain/auth"
)

// Presentation is the top-level layout a request renders in.
type Presentation string

const (
	Unauthenticated Presentation = "unauthenticated"
	AdminConsole    Presentation = "admin"
	DeliveryConsole Presentation = "delivery"
)

// Routed paths.
const (
	PathDashboard      = "/"
	PathLogin          = "/login"
	PathDeliveryLayout = "/deliverylayout"
	PathProducts       = "/products"
	PathUsers          = "/user"
	PathCategory       = "/category"
	PathDelivery       = "/delivery"
)

var adminPaths = map[string]bool{
	PathDashboard: true,
	PathProducts:  true,
	PathUsers:     true,
	PathCategory:  true,
	PathDelivery:  true,
}

// Decision is the guard outcome. An empty Redirect means render Presentation.
type Decision struct {
	Presentation Presentation
	Redirect     string
}

// Render reports whether the request should be rendered rather than redirected.
func (d Decision) Render() bool { return d.Redirect == "" }

// PresentationFor maps auth state onto a layout, ignoring the path.
// Roles other than Admin and Delivery fail closed.
func PresentationFor(state auth.State) Presentation {
	if !state.IsAuthenticated || state.Identity == nil {
		return Unauthenticated
	}
	switch state.Identity.Role {
	case auth.RoleAdmin:
		return AdminConsole
	case auth.RoleDelivery:
		return DeliveryConsole
	default:
		return Unauthenticated
	}
}

// Home returns the landing path for a presentation.
func Home(p Presentation) string {
	switch p {
	case AdminConsole:
		return PathDashboard
	case DeliveryConsole:
		return PathDeliveryLayout
	default:
		return PathLogin
	}
}

// Known reports whether path is one of the routed top-level paths.
func Known(path string) bool {
	path = Normalize(path)
	return adminPaths[path] || path == PathLogin || path == PathDeliveryLayout
}

// Normalize strips a trailing slash so "/products/" and "/products" route alike.
func Normalize(path string) string {
	if path == "" {
		return PathDashboard
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			return PathDashboard
		}
	}
	return path
}

// Decide selects the presentation for state at path, or the path to redirect to.
func Decide(state auth.State, path string) Decision {
	path = Normalize(path)
	p := PresentationFor(state)

	if !Known(path) {
		return Decision{Presentation: p, Redirect: PathDashboard}
	}

	switch p {
	case AdminConsole:
		if adminPaths[path] {
			return Decision{Presentation: p}
		}
		return Decision{Presentation: p, Redirect: PathDashboard}
	case DeliveryConsole:
		if path == PathDeliveryLayout {
			return Decision{Presentation: p}
		}
		return Decision{Presentation: p, Redirect: PathDeliveryLayout}
	default:
		if path == PathLogin {
			return Decision{Presentation: Unauthenticated}
		}
		return Decision{Presentation: Unauthenticated, Redirect: PathLogin}
	}
}
