package ports

import (
	"context"

	"github.com/peoplehub/hrm-api/internal/core/domain"
)

// DepartmentRepository persists departments. The store enforces name
// uniqueness; duplicates surface as domain.ErrDuplicateDepartment.
type DepartmentRepository interface {
	List(ctx context.Context) ([]domain.Department, error)
	FindByID(ctx context.Context, id string) (*domain.Department, error)
	Create(ctx context.Context, dept *domain.Department) (*domain.Department, error)
	Update(ctx context.Context, dept *domain.Department) error
	Delete(ctx context.Context, id string) error
}
