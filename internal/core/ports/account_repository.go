package ports

import (
	"context"
	"time"

	"github.com/tradeco/board/internal/core/domain"
)

// AccountUpdate carries the fields to $set on an account. Nil pointers are left untouched.
type AccountUpdate struct {
	Name         *string
	Surname      *string
	Email        *string
	Bio          *string
	DateOfBirth  *time.Time
	City         *string
	Country      *string
	PasswordHash *string
}

// IsEmpty reports whether the update would change nothing.
func (u AccountUpdate) IsEmpty() bool {
	return u.Name == nil && u.Surname == nil && u.Email == nil && u.Bio == nil &&
		u.DateOfBirth == nil && u.City == nil && u.Country == nil && u.PasswordHash == nil
}

// AccountRepository persists accounts, one collection per role.
type AccountRepository interface {
	// FindByCredentials looks up an account whose identifier field and password hash
	// both match, in a single query. A miss on either returns domain.ErrAccountNotFound.
	FindByCredentials(ctx context.Context, role domain.Role, identifier, passwordHash string) (*domain.Account, error)
	FindByID(ctx context.Context, role domain.Role, id string) (*domain.Account, error)
	ExistsByIdentifier(ctx context.Context, role domain.Role, identifier string) (bool, error)
	Insert(ctx context.Context, account *domain.Account) (*domain.Account, error)
	Update(ctx context.Context, role domain.Role, id string, update AccountUpdate) error
	Delete(ctx context.Context, role domain.Role, id string) error

	AddShelfEntry(ctx context.Context, id string, entry domain.ShelfEntry) error
	RemoveShelfEntry(ctx context.Context, id, entryID string) error
}
