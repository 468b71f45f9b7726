package service

import (
	"github.com/staffdir/employee-directory/internal/core/domain"
	"github.com/staffdir/employee-directory/internal/core/ports"
)

// Decision is the three-way outcome of a route-access check. It is kept as
// three values rather than a boolean so callers can distinguish "go log in"
// from "you may not see this".
type Decision int

const (
	Allow Decision = iota
	RedirectLogin        // no active session
	RedirectUnauthorized // active session, role not in the allowed set
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect_login"
	case RedirectUnauthorized:
		return "redirect_unauthorized"
	}
	return "unknown"
}

// AccessPolicy answers whether the current session may reach a view
// restricted to a set of roles.
type AccessPolicy struct {
	sessions ports.SessionService
}

func NewAccessPolicy(sessions ports.SessionService) *AccessPolicy {
	return &AccessPolicy{sessions: sessions}
}

// Decide sends unauthenticated callers to login and authenticated callers
// without an allowed role to the unauthorized view. An empty allowed set
// means any authenticated session passes.
func (p *AccessPolicy) Decide(allowed ...domain.Role) Decision {
	if !p.sessions.IsAuthenticated() {
		return RedirectLogin
	}
	if len(allowed) == 0 || p.sessions.HasAnyRole(allowed...) {
		return Allow
	}
	return RedirectUnauthorized
}
