package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tradeco/board/internal/core/domain"
	"github.com/tradeco/board/internal/core/ports"
	"github.com/tradeco/board/internal/metrics"
)

// AuthService implements credential verification, registration and login.
type AuthService struct {
	accounts ports.AccountRepository
	sessions ports.SessionService
	hasher   ports.PasswordHasher
	events   ports.EventPublisher
	log      zerolog.Logger
	nowFn    func() time.Time
}

func NewAuthService(
	accounts ports.AccountRepository,
	sessions ports.SessionService,
	hasher ports.PasswordHasher,
	events ports.EventPublisher,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		accounts: accounts,
		sessions: sessions,
		hasher:   hasher,
		events:   events,
		log:      log,
		nowFn:    time.Now,
	}
}

// Verify checks identifier and password with one combined lookup. It never says which
// of the two was wrong.
func (s *AuthService) Verify(ctx context.Context, role domain.Role, identifier, password string) (*domain.Account, error) {
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return nil, domain.ErrAccountNotFound
	}
	return s.accounts.FindByCredentials(ctx, role, identifier, s.hasher.Hash(password))
}

// Register creates an account and logs it in.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.Account, *ports.IssuedSession, error) {
	if !in.Role.Valid() {
		return nil, nil, domain.ErrInvalidRole
	}
	identifier := strings.TrimSpace(in.Identifier())
	if identifier == "" || in.Password == "" {
		return nil, nil, fmt.Errorf("%w: %s and password are required", domain.ErrInvalidInput, in.Role.IdentifierField())
	}

	exists, err := s.accounts.ExistsByIdentifier(ctx, in.Role, identifier)
	if err != nil {
		return nil, nil, fmt.Errorf("register: %w", err)
	}
	if exists {
		metrics.RegistrationsTotal.WithLabelValues(string(in.Role), "conflict").Inc()
		return nil, nil, domain.ErrAccountExists
	}

	if in.Password != in.ConfirmPassword {
		metrics.RegistrationsTotal.WithLabelValues(string(in.Role), "invalid").Inc()
		return nil, nil, domain.ErrPasswordMismatch
	}

	now := s.nowFn().UTC()
	account := &domain.Account{
		Role:      in.Role,
		Name:      strings.TrimSpace(in.Name),
		Surname:   strings.TrimSpace(in.Surname),
		Email:     strings.TrimSpace(in.Email),
		Username:  strings.TrimSpace(in.Username),
		Phone:     strings.TrimSpace(in.Phone),
		CreatedAt: now,
		UpdatedAt: now,

		PasswordHash: s.hasher.Hash(in.Password),
	}
	switch in.Role {
	case domain.RoleTradesman:
		account.Trade = strings.TrimSpace(in.Trade)
		account.Rate = in.Rate
		account.SortCode = strings.TrimSpace(in.SortCode)
		account.AccountNumber = strings.TrimSpace(in.AccountNumber)
	case domain.RoleReader:
		account.Shelf = []domain.ShelfEntry{}
	}

	created, err := s.accounts.Insert(ctx, account)
	if err != nil {
		return nil, nil, fmt.Errorf("register: %w", err)
	}

	issued, err := s.sessions.Start(ctx, created, in.Remember)
	if err != nil {
		return nil, nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues(string(in.Role), "success").Inc()
	s.publish(domain.EventRegistered, created.Role, created.ID, identifier)
	s.log.Info().Str("role", string(created.Role)).Str("account_id", created.ID).Msg("account registered")

	return created, issued, nil
}

// Login verifies the credentials and opens a session.
func (s *AuthService) Login(ctx context.Context, role domain.Role, identifier, password string, remember bool) (*domain.Account, *ports.IssuedSession, error) {
	account, err := s.Verify(ctx, role, identifier, password)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			metrics.LoginsTotal.WithLabelValues(string(role), "failure").Inc()
			s.publish(domain.EventLoginFailed, role, "", strings.TrimSpace(identifier))
		}
		return nil, nil, err
	}

	issued, err := s.sessions.Start(ctx, account, remember)
	if err != nil {
		return nil, nil, err
	}

	metrics.LoginsTotal.WithLabelValues(string(role), "success").Inc()
	s.publish(domain.EventLoginSucceeded, role, account.ID, account.Identifier())
	return account, issued, nil
}

// Logout destroys the session behind token, if any.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	sess, err := s.sessions.Resolve(ctx, token)
	if err == nil {
		s.publish(domain.EventLoggedOut, sess.Role, sess.AccountID, sess.Identifier)
	}
	return s.sessions.Destroy(ctx, token)
}

func (s *AuthService) publish(typ domain.AccountEventType, role domain.Role, accountID, identifier string) {
	if s.events == nil {
		return
	}
	s.events.Publish(domain.AccountEvent{
		Type:       typ,
		Role:       role,
		AccountID:  accountID,
		Identifier: identifier,
		Timestamp:  s.nowFn().UTC(),
	})
}
