package ports

import (
	"context"

	"github.com/peoplehub/hrm-api/internal/core/domain"
)

// JobRoleRepository persists job titles. The store enforces title uniqueness;
// duplicates surface as domain.ErrDuplicateJobRole.
type JobRoleRepository interface {
	List(ctx context.Context) ([]domain.JobRole, error)
	FindByID(ctx context.Context, id string) (*domain.JobRole, error)
	Create(ctx context.Context, role *domain.JobRole) (*domain.JobRole, error)
	Update(ctx context.Context, role *domain.JobRole) error
	Delete(ctx context.Context, id string) error
}
