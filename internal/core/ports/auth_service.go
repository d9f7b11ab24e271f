package ports

import (
	"context"

	"github.com/tradeco/board/internal/core/domain"
)

// RegisterInput carries the registration form for any role.
// Fields that do not apply to the role are ignored.
type RegisterInput struct {
	Role            domain.Role
	Name            string
	Surname         string
	Email           string
	Username        string
	Password        string
	ConfirmPassword string
	Phone           string
	Trade           string
	Rate            float64
	SortCode        string
	AccountNumber   string
	Remember        bool
}

// Identifier returns the value that must be unique for the input's role.
func (in RegisterInput) Identifier() string {
	if in.Role.IdentifierField() == "username" {
		return in.Username
	}
	return in.Email
}

// AuthService verifies credentials and opens sessions.
type AuthService interface {
	Verify(ctx context.Context, role domain.Role, identifier, password string) (*domain.Account, error)
	Register(ctx context.Context, input RegisterInput) (*domain.Account, *IssuedSession, error)
	Login(ctx context.Context, role domain.Role, identifier, password string, remember bool) (*domain.Account, *IssuedSession, error)
	Logout(ctx context.Context, token string) error
}
