package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tradeco/board/internal/core/domain"
	"github.com/tradeco/board/internal/core/ports"
	"github.com/tradeco/board/internal/metrics"
)

const (
	defaultSessionTTL  = 2 * time.Hour
	defaultRememberTTL = 30 * 24 * time.Hour
)

// SessionConfig holds the two expiry windows and the cookie signing key.
type SessionConfig struct {
	Secret      string
	TTL         time.Duration
	RememberTTL time.Duration
}

// SessionService issues and resolves sessions. The cookie token is an HS256 JWT whose
// "sid" claim names the server-side record; the record is the source of truth.
type SessionService struct {
	store    ports.SessionStore
	accounts ports.AccountRepository
	cfg      SessionConfig
	log      zerolog.Logger
	nowFn    func() time.Time
}

func NewSessionService(store ports.SessionStore, accounts ports.AccountRepository, cfg SessionConfig, log zerolog.Logger) *SessionService {
	if cfg.TTL <= 0 {
		cfg.TTL = defaultSessionTTL
	}
	if cfg.RememberTTL <= 0 {
		cfg.RememberTTL = defaultRememberTTL
	}
	return &SessionService{store: store, accounts: accounts, cfg: cfg, log: log, nowFn: time.Now}
}

type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// Start opens a session for account. remember selects the extended window.
func (s *SessionService) Start(ctx context.Context, account *domain.Account, remember bool) (*ports.IssuedSession, error) {
	ttl := s.cfg.TTL
	if remember {
		ttl = s.cfg.RememberTTL
	}

	now := s.nowFn().UTC()
	sess := &domain.Session{
		ID:         uuid.NewString(),
		AccountID:  account.ID,
		Role:       account.Role,
		Identifier: account.Identifier(),
		Remember:   remember,
		CreatedAt:  now,
		ExpiresAt:  now.Add(ttl),
	}
	if err := s.store.Save(ctx, sess, ttl); err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	token, err := s.sign(sess)
	if err != nil {
		_ = s.store.Delete(ctx, sess.ID)
		return nil, fmt.Errorf("start session: sign: %w", err)
	}

	metrics.SessionsStartedTotal.WithLabelValues(string(account.Role), rememberLabel(remember)).Inc()
	return &ports.IssuedSession{Session: sess, Token: token}, nil
}

// Resolve maps a cookie token back to its live session.
func (s *SessionService) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	sid, ok := s.parse(token)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	sess, err := s.store.Get(ctx, sid)
	if err != nil {
		return nil, err
	}

	if sess.Expired(s.nowFn()) {
		s.drop(ctx, sess.ID, "expired")
		return nil, domain.ErrSessionNotFound
	}

	if _, err := s.accounts.FindByID(ctx, sess.Role, sess.AccountID); err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			s.drop(ctx, sess.ID, "orphaned")
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("resolve session: %w", err)
	}

	return sess, nil
}

// Destroy ends the session behind token. Calling it again is harmless.
func (s *SessionService) Destroy(ctx context.Context, token string) error {
	sid, ok := s.parse(token)
	if !ok {
		return nil
	}
	return s.DestroyByID(ctx, sid)
}

func (s *SessionService) DestroyByID(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	metrics.SessionsDestroyedTotal.WithLabelValues("logout").Inc()
	return nil
}

func (s *SessionService) Rename(ctx context.Context, id, identifier string) error {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	ttl := sess.ExpiresAt.Sub(s.nowFn())
	if ttl <= 0 {
		return domain.ErrSessionNotFound
	}
	sess.Identifier = identifier
	if err := s.store.Save(ctx, sess, ttl); err != nil {
		return fmt.Errorf("rename session: %w", err)
	}
	return nil
}

func (s *SessionService) drop(ctx context.Context, id, reason string) {
	if err := s.store.Delete(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("session_id", id).Msg("failed to delete stale session")
		return
	}
	metrics.SessionsDestroyedTotal.WithLabelValues(reason).Inc()
}

func (s *SessionService) sign(sess *domain.Session) (string, error) {
	claims := sessionClaims{
		SessionID: sess.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(sess.CreatedAt),
			ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.cfg.Secret))
}

// parse validates the token signature and expiry and returns the session id.
func (s *SessionService) parse(token string) (string, bool) {
	if token == "" {
		return "", false
	}
	claims := &sessionClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.cfg.Secret), nil
	}, jwt.WithTimeFunc(s.nowFn))
	if err != nil || !tkn.Valid || claims.SessionID == "" {
		return "", false
	}
	return claims.SessionID, true
}

func rememberLabel(remember bool) string {
	if remember {
		return "remember"
	}
	return "default"
}
