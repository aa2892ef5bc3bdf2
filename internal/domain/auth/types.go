// Package auth contains domain-level types for session tokens and the
// identities derived from them. It is pure and free of framework/adapter concerns.
package auth

import "time"

// Role is the role claim carried by a session token.
// Values outside the constants below are kept verbatim so the route guard can fail closed.
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleDelivery Role = "Delivery"
)

// Known reports whether r is a role the console has a layout for.
func (r Role) Known() bool {
	return r == RoleAdmin || r == RoleDelivery
}

// Identity is the user record derived from a currently valid token.
// It is never stored; it is recomputed on each decode.
type Identity struct {
	Name   string `json:"name"`
	UserID string `json:"userId"`
	Role   Role   `json:"role"`
}

// Claims is the decoded content of a session token.
type Claims struct {
	Identity  Identity
	ExpiresAt time.Time
}

// ExpiredAt reports whether the claims are no longer valid at now.
// A token is valid only while its expiry is strictly in the future.
func (c Claims) ExpiredAt(now time.Time) bool {
	return !c.ExpiresAt.After(now)
}

// State is the authentication status of one browser session.
// IsAuthenticated is true iff Identity is non-nil.
type State struct {
	IsAuthenticated bool      `json:"isAuthenticated"`
	Identity        *Identity `json:"identity"`
}

// Unauthenticated is the logged-out state.
func Unauthenticated() State { return State{} }

// Authenticated builds the state for a decoded identity.
func Authenticated(id Identity) State {
	return State{IsAuthenticated: true, Identity: &id}
}

// Role returns the identity role, or "" when unauthenticated.
func (s State) Role() Role {
	if s.Identity == nil {
		return ""
	}
	return s.Identity.Role
}
