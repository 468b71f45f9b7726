package ports

import (
	"context"

	"github.com/staffdir/employee-directory/internal/core/domain"
)

// SessionService owns the single process-wide login: credential
// verification, token issuance and expiry, and role queries.
//
// Expiry is lazy: every read treats a session past its expiry as absent;
// nothing sweeps in the background. The one exception is Init, which clears
// an expired or unreadable persisted session at startup so no stale state
// survives a restart.
type SessionService interface {
	// Init loads any persisted session. Expired or unparsable payloads are
	// cleared (logout semantics), never surfaced as errors.
	Init(ctx context.Context) error

	// Login verifies the pair against the seeded credential list
	// (exact, case-sensitive) and on success persists and returns a fresh
	// session. A non-matching pair fails with domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (*domain.Session, error)

	// Logout clears the persisted and in-memory session. Idempotent.
	Logout(ctx context.Context) error

	// Current returns a copy of the active session, or nil when
	// unauthenticated or expired.
	Current() *domain.Session

	IsAuthenticated() bool
	HasRole(role domain.Role) bool
	HasAnyRole(roles ...domain.Role) bool

	// Validate reports whether the presented opaque token is the active
	// session's token, returning a copy of the session when it is.
	Validate(token string) (*domain.Session, bool)
}

// TokenStorage is the durable single-slot store for the active session.
// Load returns (nil, nil) both when the slot is empty and when it holds an
// unparsable payload: corruption is unrecoverable by any caller, so it
// reads as absence.
type TokenStorage interface {
	Load(ctx context.Context) (*domain.Session, error)
	Save(ctx context.Context, s *domain.Session) error
	Clear(ctx context.Context) error
}
