package ports

import (
	"context"

	"github.com/tradeco/board/internal/core/domain"
)

// ShelfService manages a reader's bookshelf.
type ShelfService interface {
	Shelf(ctx context.Context, readerID string) (*domain.Account, error)
	Add(ctx context.Context, readerID, title, author string) (*domain.ShelfEntry, error)
	Remove(ctx context.Context, readerID, entryID string) error
}
