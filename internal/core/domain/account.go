package domain

import (
	"strings"
	"time"
)

// Location is the optional city/country pair shown on a profile.
type Location struct {
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
}

// IsZero reports whether neither half of the pair is set.
func (l Location) IsZero() bool { return l.City == "" && l.Country == "" }

// ShelfEntry is a book on a reader's shelf.
type ShelfEntry struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Author  string    `json:"author,omitempty"`
	AddedAt time.Time `json:"added_at"`
}

// Account models a registered principal of any role.
type Account struct {
	ID            string       `json:"id"`
	Role          Role         `json:"role"`
	Name          string       `json:"name"`
	Surname       string       `json:"surname"`
	Email         string       `json:"email,omitempty"`
	Username      string       `json:"username,omitempty"`
	PasswordHash  string       `json:"-"`
	Phone         string       `json:"phone,omitempty"`
	Trade         string       `json:"trade,omitempty"`
	Rate          float64      `json:"rate,omitempty"`
	SortCode      string       `json:"-"`
	AccountNumber string       `json:"-"`
	Bio           string       `json:"bio,omitempty"`
	DateOfBirth   *time.Time   `json:"date_of_birth,omitempty"`
	Location      Location     `json:"location"`
	Shelf         []ShelfEntry `json:"shelf,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// Identifier returns the value of the account's role identifier field.
func (a *Account) Identifier() string {
	if a.Role.IdentifierField() == "username" {
		return a.Username
	}
	return a.Email
}

// DisplayName joins the name parts, falling back to the identifier.
func (a *Account) DisplayName() string {
	n := strings.TrimSpace(a.Name + " " + a.Surname)
	if n == "" {
		return a.Identifier()
	}
	return n
}
