package ports

import (
	"context"

	"github.com/peoplehub/hrm-api/internal/core/domain"
)

type CreateJobRoleInput struct {
	Title       string
	Description string
}

type JobRoleService interface {
	List(ctx context.Context) ([]domain.JobRole, error)
	Get(ctx context.Context, id string) (*domain.JobRole, error)
	Create(ctx context.Context, input CreateJobRoleInput) (*domain.JobRole, error)
	Update(ctx context.Context, id string, input CreateJobRoleInput) (*domain.JobRole, error)
	Delete(ctx context.Context, id string) error
}
