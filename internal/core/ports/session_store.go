package ports

import (
	"context"
	"time"

	"github.com/tradeco/board/internal/core/domain"
)

// SessionStore keeps server-side session records. Records expire on their own after ttl.
type SessionStore interface {
	Save(ctx context.Context, session *domain.Session, ttl time.Duration) error
	// Get returns domain.ErrSessionNotFound when the id is unknown or has expired.
	Get(ctx context.Context, id string) (*domain.Session, error)
	// Delete is a no-op for unknown ids.
	Delete(ctx context.Context, id string) error
}
