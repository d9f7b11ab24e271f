package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tradeco/board/internal/core/domain"
	"github.com/tradeco/board/internal/core/ports"
)

// ShelfService edits the bookshelf embedded in a reader's account.
type ShelfService struct {
	accounts ports.AccountRepository
	nowFn    func() time.Time
}

func NewShelfService(accounts ports.AccountRepository) *ShelfService {
	return &ShelfService{accounts: accounts, nowFn: time.Now}
}

func (s *ShelfService) Shelf(ctx context.Context, readerID string) (*domain.Account, error) {
	return s.accounts.FindByID(ctx, domain.RoleReader, readerID)
}

func (s *ShelfService) Add(ctx context.Context, readerID, title, author string) (*domain.ShelfEntry, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	entry := domain.ShelfEntry{
		ID:      uuid.NewString(),
		Title:   title,
		Author:  strings.TrimSpace(author),
		AddedAt: s.nowFn().UTC(),
	}
	if err := s.accounts.AddShelfEntry(ctx, readerID, entry); err != nil {
		return nil, fmt.Errorf("add to shelf: %w", err)
	}
	return &entry, nil
}

func (s *ShelfService) Remove(ctx context.Context, readerID, entryID string) error {
	if strings.TrimSpace(entryID) == "" {
		return domain.ErrShelfEntryNotFound
	}
	return s.accounts.RemoveShelfEntry(ctx, readerID, entryID)
}
