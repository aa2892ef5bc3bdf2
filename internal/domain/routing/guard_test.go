package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/target/storefront-admin/internal/domain/auth"
)

func stateFor(role auth.Role) auth.State {
	return auth.Authenticated(auth.Identity{Name: "n", UserID: "1", Role: role})
}

func TestDecide(t *testing.T) {
	anon := auth.Unauthenticated()
	admin := stateFor(auth.RoleAdmin)
	delivery := stateFor(auth.RoleDelivery)
	unknown := stateFor("Customer")

	tests := []struct {
		name  string
		state auth.State
		path  string
		want  Decision
	}{
		{"admin dashboard", admin, "/", Decision{Presentation: AdminConsole}},
		{"admin products", admin, "/products", Decision{Presentation: AdminConsole}},
		{"admin trailing slash", admin, "/category/", Decision{Presentation: AdminConsole}},
		{"admin on login", admin, "/login", Decision{Presentation: AdminConsole, Redirect: "/"}},
		{"admin on delivery layout", admin, "/deliverylayout", Decision{Presentation: AdminConsole, Redirect: "/"}},
		{"delivery on root", delivery, "/", Decision{Presentation: DeliveryConsole, Redirect: "/deliverylayout"}},
		{"delivery on admin subpath", delivery, "/user", Decision{Presentation: DeliveryConsole, Redirect: "/deliverylayout"}},
		{"delivery on login", delivery, "/login", Decision{Presentation: DeliveryConsole, Redirect: "/deliverylayout"}},
		{"delivery home", delivery, "/deliverylayout", Decision{Presentation: DeliveryConsole}},
		{"anon on protected", anon, "/products", Decision{Presentation: Unauthenticated, Redirect: "/login"}},
		{"anon on login", anon, "/login", Decision{Presentation: Unauthenticated}},
		{"unknown role on root", unknown, "/", Decision{Presentation: Unauthenticated, Redirect: "/login"}},
		{"unknown role on login", unknown, "/login", Decision{Presentation: Unauthenticated}},
		{"unknown path", admin, "/nope", Decision{Presentation: AdminConsole, Redirect: "/"}},
		{"unknown path anon", anon, "/nope/deeper", Decision{Presentation: Unauthenticated, Redirect: "/"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.state, tt.path))
		})
	}
}

func TestDecide_IdentityMissingFailsClosed(t *testing.T) {
	d := Decide(auth.State{IsAuthenticated: true}, "/")
	assert.Equal(t, Decision{Presentation: Unauthenticated, Redirect: "/login"}, d)
}

func TestHome(t *testing.T) {
	assert.Equal(t, "/", Home(AdminConsole))
	assert.Equal(t, "/deliverylayout", Home(DeliveryConsole))
	assert.Equal(t, "/login", Home(Unauthenticated))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "/", Normalize(""))
	assert.Equal(t, "/", Normalize("/"))
	assert.Equal(t, "/", Normalize("//"))
	assert.Equal(t, "/user", Normalize("/user/"))
}

func TestDecisionRender(t *testing.T) {
	assert.True(t, Decision{Presentation: AdminConsole}.Render())
	assert.False(t, Decision{Redirect: "/"}.Render())
}
