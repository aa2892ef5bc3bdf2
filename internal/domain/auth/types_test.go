package auth

import (
	"testing"
	"time"
)

func TestRole_Known(t *testing.T) {
	if !RoleAdmin.Known() || !RoleDelivery.Known() {
		t.Fatalf("expected admin and delivery to be known")
	}
	for _, r := range []Role{"", "admin", "Customer"} {
		if r.Known() {
			t.Fatalf("did not expect %q to be known", r)
		}
	}
}

func TestClaims_ExpiredAt(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	c := Claims{ExpiresAt: now}
	if !c.ExpiredAt(now) {
		t.Fatalf("expiry equal to now must count as expired")
	}
	c.ExpiresAt = now.Add(time.Second)
	if c.ExpiredAt(now) {
		t.Fatalf("future expiry must not count as expired")
	}
}

func TestState_Constructors(t *testing.T) {
	s := Unauthenticated()
	if s.IsAuthenticated || s.Identity != nil || s.Role() != "" {
		t.Fatalf("unexpected unauthenticated state: %+v", s)
	}

	s = Authenticated(Identity{Name: "Ann", UserID: "7", Role: RoleDelivery})
	if !s.IsAuthenticated || s.Identity == nil || s.Role() != RoleDelivery {
		t.Fatalf("unexpected authenticated state: %+v", s)
	}
}
