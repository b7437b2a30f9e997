package ports

import (
	"context"

	"github.com/peoplehub/hrm-api/internal/core/domain"
)

type AuthService interface {
	// Register creates a new user, hashing the password and defaulting the
	// role set to EMPLOYEE when none is given. Returns a token so the new
	// user is immediately authenticated.
	Register(ctx context.Context, username, password, email string, roles []string) (string, *domain.User, error)
	// Login verifies credentials and returns a signed token. Unknown username
	// and wrong password are both reported as domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// CurrentUser resolves the user behind a validated token subject.
	CurrentUser(ctx context.Context, username string) (*domain.User, error)
}
