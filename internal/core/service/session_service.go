package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/staffdir/employee-directory/internal/core/domain"
	"github.com/staffdir/employee-directory/internal/core/ports"
)

// SessionService implements login, logout and role queries over the seeded
// credential list. It holds at most one session at a time, mirrored to a
// durable TokenStorage slot so it survives restarts.
type SessionService struct {
	creds   []domain.Credential
	storage ports.TokenStorage
	secret  string
	ttl     time.Duration
	delay   time.Duration
	now     func() time.Time
	log     zerolog.Logger

	mu      sync.RWMutex
	current *domain.Session
}

// SessionOption tweaks a SessionService at construction time.
type SessionOption func(*SessionService)

// WithClock replaces the time source. Tests use it to make expiry
// deterministic.
func WithClock(now func() time.Time) SessionOption {
	return func(s *SessionService) { s.now = now }
}

// WithLoginDelay sets the simulated API latency waited out before a
// successful login is persisted.
func WithLoginDelay(d time.Duration) SessionOption {
	return func(s *SessionService) { s.delay = d }
}

func NewSessionService(creds []domain.Credential, storage ports.TokenStorage, secret string, ttl time.Duration, log zerolog.Logger, opts ...SessionOption) *SessionService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	s := &SessionService{
		creds:   creds,
		storage: storage,
		secret:  secret,
		ttl:     ttl,
		now:     time.Now,
		log:     log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init loads any persisted session. An expired one is cleared immediately;
// TokenStorage already reads corruption as absence.
func (s *SessionService) Init(ctx context.Context) error {
	sess, err := s.storage.Load(ctx)
	if err != nil {
		return fmt.Errorf("load persisted session: %w", err)
	}
	if sess == nil {
		return nil
	}
	if !sess.Active(s.now()) {
		s.log.Info().Str("username", sess.Username).Msg("clearing expired persisted session")
		if err := s.storage.Clear(ctx); err != nil {
			return fmt.Errorf("clear expired session: %w", err)
		}
		return nil
	}

	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()
	s.log.Info().Str("username", sess.Username).Time("expires_at", sess.ExpiresAt).Msg("persisted session restored")
	return nil
}

// Login verifies the pair against the credential list and on success issues
// a session expiring ttl from now. The simulated latency is waited out
// before anything is persisted, so a cancelled login leaves no state behind.
func (s *SessionService) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	var cred *domain.Credential
	for i := range s.creds {
		if s.creds[i].Username == username && s.creds[i].Password == password {
			cred = &s.creds[i]
			break
		}
	}
	if cred == nil {
		s.log.Warn().Str("username", username).Msg("login rejected")
		return nil, domain.ErrInvalidCredentials
	}

	issued := s.now()
	sess := &domain.Session{
		Username:  cred.Username,
		Role:      cred.Role,
		ExpiresAt: issued.Add(s.ttl),
	}
	token, err := s.signToken(sess, issued)
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}
	sess.Token = token

	if err := wait(ctx, s.delay); err != nil {
		return nil, err
	}

	if err := s.storage.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()

	s.log.Info().
		Str("username", sess.Username).
		Str("role", string(sess.Role)).
		Time("expires_at", sess.ExpiresAt).
		Msg("session issued")

	out := *sess
	return &out, nil
}

// Logout clears the persisted and in-memory session. Calling it while
// already logged out is a no-op.
func (s *SessionService) Logout(ctx context.Context) error {
	if err := s.storage.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	s.mu.Lock()
	had := s.current != nil
	s.current = nil
	s.mu.Unlock()

	if had {
		s.log.Info().Msg("session ended")
	}
	return nil
}

// Current returns a copy of the active session or nil. An expired session
// reads as absent but is not cleared here; expiry is lazy.
func (s *SessionService) Current() *domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.current.Active(s.now()) {
		return nil
	}
	out := *s.current
	return &out
}

func (s *SessionService) IsAuthenticated() bool {
	return s.Current() != nil
}

func (s *SessionService) HasRole(role domain.Role) bool {
	sess := s.Current()
	return sess != nil && sess.Role == role
}

func (s *SessionService) HasAnyRole(roles ...domain.Role) bool {
	sess := s.Current()
	if sess == nil {
		return false
	}
	for _, r := range roles {
		if sess.Role == r {
			return true
		}
	}
	return false
}

// Validate reports whether the presented token is the active session's
// token. There is only ever one live session, so a plain comparison is the
// whole check.
func (s *SessionService) Validate(token string) (*domain.Session, bool) {
	sess := s.Current()
	if sess == nil || sess.Token != token {
		return nil, false
	}
	return sess, true
}

// signToken synthesizes the opaque token string: an HS256 JWT carrying the
// identity and expiry plus a random jti. The core never parses it back;
// session state drives every check.
func (s *SessionService) signToken(sess *domain.Session, issued time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":  sess.Username,
		"role": string(sess.Role),
		"jti":  uuid.NewString(),
		"iat":  issued.Unix(),
		"exp":  sess.ExpiresAt.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.secret))
}
