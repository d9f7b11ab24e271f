package domain

import "time"

// AccountEventType names something that happened to an account.
type AccountEventType string

const (
	EventRegistered      AccountEventType = "registered"
	EventLoginSucceeded  AccountEventType = "login_succeeded"
	EventLoginFailed     AccountEventType = "login_failed"
	EventLoggedOut       AccountEventType = "logged_out"
	EventProfileUpdated  AccountEventType = "profile_updated"
	EventPasswordChanged AccountEventType = "password_changed"
	EventDeleted         AccountEventType = "deleted"
)

// AccountEvent is an audit trail entry. AccountID is empty for failed logins.
type AccountEvent struct {
	Type       AccountEventType
	Role       Role
	AccountID  string
	Identifier string
	Timestamp  time.Time
}
