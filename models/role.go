package models

import (
	"errors"
	"strings"
)

// Role is the closed set of account roles.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// ErrUnknownRole is returned by ParseRole for values outside the enumeration.
var ErrUnknownRole = errors.New("unknown role")

// ParseRole converts a raw claim or request value into a Role.
// Matching is case-insensitive; surrounding whitespace is ignored.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleUser:
		return RoleUser, nil
	default:
		return "", ErrUnknownRole
	}
}

// Valid reports whether r is one of the declared roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

func (r Role) String() string {
	return string(r)
}

// Capability is an action class checked at the HTTP boundary.
type Capability int

const (
	// CapabilityMember is held by every authenticated account.
	CapabilityMember Capability = iota + 1
	// CapabilityAdmin is held by administrators only.
	CapabilityAdmin
)

func (c Capability) String() string {
	switch c {
	case CapabilityMember:
		return "member"
	case CapabilityAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// Can is the single authorization check used by the transport layer.
func (r Role) Can(c Capability) bool {
	switch c {
	case CapabilityMember:
		return r == RoleAdmin || r == RoleUser
	case CapabilityAdmin:
		return r == RoleAdmin
	default:
		return false
	}
}
