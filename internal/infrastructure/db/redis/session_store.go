package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tradeco/board/internal/core/domain"
	"github.com/tradeco/board/internal/core/ports"
)

// SessionStore keeps session records in Redis. Key format: session:<id>.
// Redis expires each key with the session, so abandoned sessions clean themselves up.
type SessionStore struct {
	client redis.Cmdable
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client redis.Cmdable) *SessionStore {
	return &SessionStore{client: client}
}

var _ ports.SessionStore = (*SessionStore)(nil)

type sessionRecord struct {
	AccountID  string    `json:"account_id"`
	Role       string    `json:"role"`
	Identifier string    `json:"identifier"`
	Remember   bool      `json:"remember"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

func (s *SessionStore) Save(ctx context.Context, sess *domain.Session, ttl time.Duration) error {
	raw, err := json.Marshal(sessionRecord{
		AccountID:  sess.AccountID,
		Role:       string(sess.Role),
		Identifier: sess.Identifier,
		Remember:   sess.Remember,
		CreatedAt:  sess.CreatedAt,
		ExpiresAt:  sess.ExpiresAt,
	})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.client.Set(ctx, s.key(sess.ID), raw, ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *SessionStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	raw, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("load session: %w", err)
	}

	var rec sessionRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &domain.Session{
		ID:         id,
		AccountID:  rec.AccountID,
		Role:       domain.Role(rec.Role),
		Identifier: rec.Identifier,
		Remember:   rec.Remember,
		CreatedAt:  rec.CreatedAt,
		ExpiresAt:  rec.ExpiresAt,
	}, nil
}

// Delete removes the record. Unknown ids are not an error.
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *SessionStore) key(id string) string {
	return "session:" + id
}
