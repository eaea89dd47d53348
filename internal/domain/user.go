package domain

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Role is the closed set of privilege levels a user can hold.
type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// ErrUnknownRole is returned when parsing a value outside the Role set.
var ErrUnknownRole = errors.New("unknown role")

// ParseRole converts raw input into a Role. Empty input yields RoleUser.
func ParseRole(raw string) (Role, error) {
	if raw == "" {
		return RoleUser, nil
	}
	if role := Role(raw); role.Valid() {
		return role, nil
	}
	return "", ErrUnknownRole
}

// Valid reports whether r is one of the declared roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleSuperAdmin:
		return true
	default:
		return false
	}
}

// User is the domain model for a registered account.
type User struct {
	ID             int64
	Email          string
	PasswordHash   string
	FullName       string
	Phone          *string
	Role           Role
	CreatedAt      time.Time
	LastModifiedAt time.Time
}

// MaxFullNameLength is the stored width of a normalised full name, in runes.
const MaxFullNameLength = 200

var (
	// ErrFullNameTooShort is returned when fewer than two names are supplied.
	ErrFullNameTooShort = errors.New("full name must be at least two names")
	// ErrFullNameTooLong is returned when the normalised name exceeds MaxFullNameLength.
	ErrFullNameTooLong = errors.New("full name is too long")
)

// NormalizeFullName turns "first [middle...] last" into "Last, First".
func NormalizeFullName(raw string) (string, error) {
	names := strings.Fields(raw)
	if len(names) < 2 {
		return "", ErrFullNameTooShort
	}
	caser := cases.Title(language.Und)
	first := caser.String(strings.ToLower(names[0]))
	last := caser.String(strings.ToLower(names[len(names)-1]))
	normalized := last + ", " + first
	if utf8.RuneCountInString(normalized) > MaxFullNameLength {
		return "", ErrFullNameTooLong
	}
	return normalized, nil
}
