package domain

import "time"

// Session is the server-side record behind a session cookie.
type Session struct {
	ID         string    `json:"id"`
	AccountID  string    `json:"account_id"`
	Role       Role      `json:"role"`
	Identifier string    `json:"identifier"`
	Remember   bool      `json:"remember"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// Expired reports whether the session is no longer valid at now.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
