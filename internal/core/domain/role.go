package domain

import "strings"

// Role tags an account kind. Each role has its own collection, forms and dashboard.
type Role string

const (
	RoleClient    Role = "client"
	RoleTradesman Role = "tradesman"
	RoleReader    Role = "reader"
)

// Roles lists every known role.
var Roles = []Role{RoleClient, RoleTradesman, RoleReader}

// ParseRole converts a raw string into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleTradesman, RoleReader:
		return true
	}
	return false
}

// IdentifierField returns the stored field that identifies a principal of this role.
// Readers sign in with a username, everybody else with an email address.
func (r Role) IdentifierField() string {
	if r == RoleReader {
		return "username"
	}
	return "email"
}

func (r Role) String() string { return string(r) }
