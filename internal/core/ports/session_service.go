package ports

import (
	"context"

	"github.com/tradeco/board/internal/core/domain"
)

// IssuedSession is a freshly started session and the cookie token that refers to it.
type IssuedSession struct {
	Session *domain.Session
	Token   string
}

// SessionService runs the Anonymous/Authenticated state machine.
type SessionService interface {
	Start(ctx context.Context, account *domain.Account, remember bool) (*IssuedSession, error)
	// Resolve returns domain.ErrSessionNotFound for any token that does not map to a live
	// session of an existing account.
	Resolve(ctx context.Context, token string) (*domain.Session, error)
	// Destroy is idempotent: unknown, expired or malformed tokens are not an error.
	Destroy(ctx context.Context, token string) error
	DestroyByID(ctx context.Context, id string) error
	// Rename rewrites the identifier recorded on session id, keeping its expiry.
	Rename(ctx context.Context, id, identifier string) error
}
