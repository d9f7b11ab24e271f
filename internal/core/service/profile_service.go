package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tradeco/board/internal/core/domain"
	"github.com/tradeco/board/internal/core/ports"
)

const dateOfBirthLayout = "2006-01-02"

// ProfileService lets a principal edit, re-key or delete its own account.
type ProfileService struct {
	accounts ports.AccountRepository
	sessions ports.SessionService
	hasher   ports.PasswordHasher
	events   ports.EventPublisher
	log      zerolog.Logger
	nowFn    func() time.Time
}

func NewProfileService(
	accounts ports.AccountRepository,
	sessions ports.SessionService,
	hasher ports.PasswordHasher,
	events ports.EventPublisher,
	log zerolog.Logger,
) *ProfileService {
	return &ProfileService{
		accounts: accounts,
		sessions: sessions,
		hasher:   hasher,
		events:   events,
		log:      log,
		nowFn:    time.Now,
	}
}

func (s *ProfileService) Get(ctx context.Context, p *domain.Session) (*domain.Account, error) {
	return s.accounts.FindByID(ctx, p.Role, p.AccountID)
}

// Update overwrites the allow-listed fields whose trimmed input is non-empty.
func (s *ProfileService) Update(ctx context.Context, p *domain.Session, in ports.UpdateProfileInput) (*domain.Account, error) {
	var upd ports.AccountUpdate
	upd.Name = nonEmpty(in.Name)
	upd.Surname = nonEmpty(in.Surname)
	upd.Bio = nonEmpty(in.Bio)
	upd.City = nonEmpty(in.City)
	upd.Country = nonEmpty(in.Country)

	if dob := nonEmpty(in.DateOfBirth); dob != nil {
		t, err := time.Parse(dateOfBirthLayout, *dob)
		if err != nil {
			return nil, fmt.Errorf("%w: date of birth must be YYYY-MM-DD", domain.ErrInvalidInput)
		}
		if t.After(s.nowFn()) {
			return nil, fmt.Errorf("%w: date of birth is in the future", domain.ErrInvalidInput)
		}
		upd.DateOfBirth = &t
	}

	if email := nonEmpty(in.Email); email != nil {
		current, err := s.accounts.FindByID(ctx, p.Role, p.AccountID)
		if err != nil {
			return nil, err
		}
		if *email != current.Email {
			// email is the login identifier for clients and tradesmen
			if p.Role.IdentifierField() == "email" {
				taken, err := s.accounts.ExistsByIdentifier(ctx, p.Role, *email)
				if err != nil {
					return nil, fmt.Errorf("update profile: %w", err)
				}
				if taken {
					return nil, domain.ErrAccountExists
				}
			}
			upd.Email = email
		}
	}

	if !upd.IsEmpty() {
		if err := s.accounts.Update(ctx, p.Role, p.AccountID, upd); err != nil {
			return nil, fmt.Errorf("update profile: %w", err)
		}
		if upd.Email != nil && p.Role.IdentifierField() == "email" {
			s.renameSession(ctx, p, *upd.Email)
		}
		s.publish(domain.EventProfileUpdated, p)
	}

	return s.accounts.FindByID(ctx, p.Role, p.AccountID)
}

// ChangePassword replaces the stored hash once the old password matches and the new one
// is confirmed. Checks run in that order.
func (s *ProfileService) ChangePassword(ctx context.Context, p *domain.Session, oldPassword, newPassword, confirmPassword string) error {
	account, err := s.accounts.FindByID(ctx, p.Role, p.AccountID)
	if err != nil {
		return err
	}
	if s.hasher.Hash(oldPassword) != account.PasswordHash {
		return domain.ErrIncorrectOldPassword
	}
	if newPassword != confirmPassword {
		return domain.ErrPasswordMismatch
	}
	if newPassword == "" {
		return fmt.Errorf("%w: new password is required", domain.ErrInvalidInput)
	}

	hash := s.hasher.Hash(newPassword)
	if err := s.accounts.Update(ctx, p.Role, p.AccountID, ports.AccountUpdate{PasswordHash: &hash}); err != nil {
		return fmt.Errorf("change password: %w", err)
	}
	s.publish(domain.EventPasswordChanged, p)
	return nil
}

// Delete removes the account after re-verifying the password, then ends the session.
func (s *ProfileService) Delete(ctx context.Context, p *domain.Session, password string) error {
	account, err := s.accounts.FindByID(ctx, p.Role, p.AccountID)
	if err != nil {
		return err
	}
	if s.hasher.Hash(password) != account.PasswordHash {
		return domain.ErrIncorrectPassword
	}

	if err := s.accounts.Delete(ctx, p.Role, p.AccountID); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	if err := s.sessions.DestroyByID(ctx, p.ID); err != nil {
		s.log.Warn().Err(err).Str("account_id", p.AccountID).Msg("account deleted but session not destroyed")
	}

	s.publish(domain.EventDeleted, p)
	s.log.Info().Str("role", string(p.Role)).Str("account_id", p.AccountID).Msg("account deleted")
	return nil
}

func (s *ProfileService) publish(typ domain.AccountEventType, p *domain.Session) {
	if s.events == nil {
		return
	}
	s.events.Publish(domain.AccountEvent{
		Type:       typ,
		Role:       p.Role,
		AccountID:  p.AccountID,
		Identifier: p.Identifier,
		Timestamp:  s.nowFn().UTC(),
	})
}

// renameSession keeps the current session's identifier in step with a changed email,
// so later audit events name the account by its new login.
func (s *ProfileService) renameSession(ctx context.Context, p *domain.Session, identifier string) {
	p.Identifier = identifier
	if err := s.sessions.Rename(ctx, p.ID, identifier); err != nil {
		s.log.Warn().Err(err).Str("session_id", p.ID).Msg("email changed but session not renamed")
	}
}

func nonEmpty(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
