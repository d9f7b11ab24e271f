package domain

import "errors"

var (
	// ErrAccountNotFound covers both "no such identifier" and "wrong password".
	ErrAccountNotFound      = errors.New("account not found")
	ErrAccountExists        = errors.New("account already exists")
	ErrPasswordMismatch     = errors.New("passwords did not match")
	ErrIncorrectOldPassword = errors.New("incorrect old password")
	ErrIncorrectPassword    = errors.New("incorrect password")
	ErrInvalidInput         = errors.New("invalid input")
	ErrInvalidRole          = errors.New("invalid role")
	ErrSessionNotFound      = errors.New("session not found")

	ErrJobNotFound        = errors.New("job not found")
	ErrJobUnavailable     = errors.New("job is not available")
	ErrShelfEntryNotFound = errors.New("shelf entry not found")
)
