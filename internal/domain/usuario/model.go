package usuario

import (
	"errors"
	"regexp"
	"strings"
)

// RoleAdministrador is the role string the backend assigns to administrators.
// Comparison is trimmed and case-insensitive; every other value is a
// standard user.
const RoleAdministrador = "administrador"

// Max length constants for user-editable fields.
const (
	MaxEmailLength = 254
	MaxNameLength  = 120
)

// Domain errors
var (
	ErrEmptyEmail   = errors.New("e-mail cannot be empty")
	ErrInvalidEmail = errors.New("e-mail is not valid")
	ErrEmptyName    = errors.New("name cannot be empty")
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Profile holds the signed-in user's identity as the backend reports it.
type Profile struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Active bool   `json:"active"`
}

// Validate checks if the Profile has valid data.
// PRE: Profile struct is populated
// POST: Returns nil if valid, error otherwise
func (p *Profile) Validate() error {
	if strings.TrimSpace(p.Email) == "" {
		return ErrEmptyEmail
	}
	if len(p.Email) > MaxEmailLength || !strings.Contains(p.Email, "@") {
		return ErrInvalidEmail
	}
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	return nil
}

// IsAdmin reports whether the profile's role grants administrator access.
// The backend is inconsistent about casing and padding, so the check is
// trimmed and lowercased.
// INVARIANT: Profile fields are not mutated
func (p *Profile) IsAdmin() bool {
	return IsAdminRole(p.Role)
}

// IsAdminRole applies the administrator check to a bare role string.
// INVARIANT: absent/empty roles are never admin
func IsAdminRole(role string) bool {
	return strings.ToLower(strings.TrimSpace(role)) == RoleAdministrador
}

// ValidEmail reports whether the address passes the login form check.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// Initials derives the one-or-two letter avatar label from the profile's
// name, falling back to the email address.
func (p *Profile) Initials() string {
	base := strings.TrimSpace(p.Name)
	if base == "" {
		base = strings.TrimSpace(p.Email)
	}
	if base == "" {
		return "U"
	}
	parts := strings.Fields(base)
	if len(parts) > 2 {
		parts = parts[:2]
	}
	var b strings.Builder
	for _, part := range parts {
		r := []rune(part)
		b.WriteString(strings.ToUpper(string(r[0])))
	}
	return b.String()
}
