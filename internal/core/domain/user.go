package domain

import (
	"errors"
	"strings"
	"time"
)

// Role is an authorization label attached to a user. It is unrelated to the
// JobRole business entity (a job title).
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleHR       Role = "HR"
	RoleManager  Role = "MANAGER"
	RoleEmployee Role = "EMPLOYEE"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUsernameTaken = errors.New("username already taken")
var ErrEmailTaken = errors.New("email already in use")

// User models an authenticated principal in the system.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Roles        []Role    `json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasRole reports whether the user carries the given role label.
func (u *User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// ParseRole maps a case-insensitive label to a Role from the closed set.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleHR:
		return RoleHR, true
	case RoleManager:
		return RoleManager, true
	case RoleEmployee:
		return RoleEmployee, true
	}
	return "", false
}

// ParseRoles converts raw labels to Roles, dropping anything outside the
// closed set and deduplicating. Returns nil when nothing survives.
func ParseRoles(labels []string) []Role {
	var roles []Role
	seen := make(map[Role]struct{}, len(labels))
	for _, l := range labels {
		r, ok := ParseRole(l)
		if !ok {
			continue
		}
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		roles = append(roles, r)
	}
	return roles
}

// RoleStrings renders roles as plain strings for token claims and responses.
func RoleStrings(roles []Role) []string {
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = string(r)
	}
	return out
}
