package ports

import "github.com/peoplehub/hrm-api/internal/core/domain"

// TokenService issues and validates signed bearer tokens. Both operations are
// pure functions of their inputs plus the clock; no store access is involved.
type TokenService interface {
	// Issue returns a signed token encoding the user's identity and roles.
	Issue(user *domain.User) (string, error)
	// Validate parses and verifies a token string, returning the subject and
	// role claims. Fails with domain.ErrTokenMalformed, domain.ErrTokenInvalid
	// or domain.ErrTokenExpired.
	Validate(tokenString string) (string, []domain.Role, error)
}
