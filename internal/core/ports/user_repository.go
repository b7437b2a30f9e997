package ports

import (
	"context"

	"github.com/peoplehub/hrm-api/internal/core/domain"
)

// UserRepository is the credential store contract. The store must enforce
// uniqueness of username and email atomically; concurrent duplicate inserts
// are rejected by the store's constraint, not by application locking.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
