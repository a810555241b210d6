package access

import (
	"encoding"
	"errors"
)

// Role is the level of access a member has within a team.
type Role int // nolint: revive

const (
	// Member can view the team and pay their own fines.
	Member Role = iota

	// ViceAdmin can issue fines and manage invites.
	ViceAdmin

	// Admin can do everything, including role changes and deletions.
	Admin
)

// String returns the string representation of the role.
func (r Role) String() string {
	switch r {
	case Member:
		return "member"
	case ViceAdmin:
		return "vice-admin"
	case Admin:
		return "admin"
	default:
		return "unknown"
	}
}

// ParseRole parses a role string.
func ParseRole(s string) (Role, error) {
	switch s {
	case "member":
		return Member, nil
	case "vice-admin":
		return ViceAdmin, nil
	case "admin":
		return Admin, nil
	default:
		return Role(-1), ErrInvalidRole
	}
}

var (
	_ encoding.TextMarshaler   = Role(0)
	_ encoding.TextUnmarshaler = (*Role)(nil)
)

// ErrInvalidRole is returned when an invalid role is provided.
var ErrInvalidRole = errors.New("invalid role")

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Role) UnmarshalText(text []byte) error {
	l, err := ParseRole(string(text))
	if err != nil {
		return err
	}

	*r = l

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (r Role) MarshalText() (text []byte, err error) {
	return []byte(r.String()), nil
}
