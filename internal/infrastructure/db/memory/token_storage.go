package memory

import (
	"context"
	"sync"

	"github.com/staffdir/employee-directory/internal/core/domain"
)

// TokenStorage is a process-local single-slot session store, used by tests
// and when no Redis address is configured. It is durable only for the
// lifetime of the process.
type TokenStorage struct {
	mu   sync.Mutex
	sess *domain.Session
}

func NewTokenStorage() *TokenStorage {
	return &TokenStorage{}
}

func (s *TokenStorage) Load(_ context.Context) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sess == nil {
		return nil, nil
	}
	sess := *s.sess
	return &sess, nil
}

func (s *TokenStorage) Save(_ context.Context, sess *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *sess
	s.sess = &stored
	return nil
}

func (s *TokenStorage) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = nil
	return nil
}
