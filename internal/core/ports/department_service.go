package ports

import (
	"context"

	"github.com/peoplehub/hrm-api/internal/core/domain"
)

type CreateDepartmentInput struct {
	Name        string
	Description string
}

type DepartmentService interface {
	List(ctx context.Context) ([]domain.Department, error)
	Get(ctx context.Context, id string) (*domain.Department, error)
	Create(ctx context.Context, input CreateDepartmentInput) (*domain.Department, error)
	Update(ctx context.Context, id string, input CreateDepartmentInput) (*domain.Department, error)
	Delete(ctx context.Context, id string) error
}
