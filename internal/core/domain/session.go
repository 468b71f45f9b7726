package domain

import "time"

// Session is the single active login: an opaque token string plus the
// identity, role and expiry it asserts. The token's internal structure is
// never inspected by the core; session state drives every check.
type Session struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Active reports whether the session has not yet expired at the given
// instant. A nil session is never active.
func (s *Session) Active(now time.Time) bool {
	return s != nil && now.Before(s.ExpiresAt)
}
