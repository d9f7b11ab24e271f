package ports

import (
	"context"

	"github.com/tradeco/board/internal/core/domain"
)

// EventService processes account events off the request path.
type EventService interface {
	Process(ctx context.Context, event domain.AccountEvent) error
}

// EventPublisher hands events to the background workers. Publish must not block for long.
type EventPublisher interface {
	Publish(event domain.AccountEvent)
}
