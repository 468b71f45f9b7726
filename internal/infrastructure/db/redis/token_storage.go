package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/staffdir/employee-directory/internal/core/domain"
)

const sessionKey = "auth:session"

// TokenStorage persists the single active session as one JSON value under
// one Redis key. The key expires alongside the session, so an abandoned
// deployment leaves nothing behind; reads past expiry see absence either
// way.
type TokenStorage struct {
	client *redis.Client
}

func NewTokenStorage(client *redis.Client) *TokenStorage {
	return &TokenStorage{client: client}
}

// Load returns the stored session, or (nil, nil) when the slot is empty or
// holds a payload that no longer parses. Corruption is unrecoverable by the
// caller, so it reads as absence.
func (s *TokenStorage) Load(ctx context.Context) (*domain.Session, error) {
	raw, err := s.client.Get(ctx, sessionKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return decodeSession(raw), nil
}

// decodeSession parses a stored payload. A payload that no longer parses is
// nil: nothing can repair it, so it reads as absence.
func decodeSession(raw []byte) *domain.Session {
	var sess domain.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil
	}
	return &sess
}

func (s *TokenStorage) Save(ctx context.Context, sess *domain.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		// Already expired; storing it would only be cleared on next read.
		return nil
	}

	if err := s.client.Set(ctx, sessionKey, raw, ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *TokenStorage) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, sessionKey).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
