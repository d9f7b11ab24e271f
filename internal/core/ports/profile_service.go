package ports

import (
	"context"

	"github.com/tradeco/board/internal/core/domain"
)

// UpdateProfileInput holds the raw profile form. Blank values leave the stored field alone.
type UpdateProfileInput struct {
	Name        string
	Surname     string
	Email       string
	DateOfBirth string // 2006-01-02
	City        string
	Country     string
	Bio         string
}

// ProfileService mutates the authenticated principal's own account.
type ProfileService interface {
	Get(ctx context.Context, principal *domain.Session) (*domain.Account, error)
	Update(ctx context.Context, principal *domain.Session, input UpdateProfileInput) (*domain.Account, error)
	ChangePassword(ctx context.Context, principal *domain.Session, oldPassword, newPassword, confirmPassword string) error
	Delete(ctx context.Context, principal *domain.Session, password string) error
}
