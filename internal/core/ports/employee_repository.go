package ports

import (
	"context"

	"github.com/peoplehub/hrm-api/internal/core/domain"
)

// EmployeeRepository persists employees. The store enforces email uniqueness;
// duplicates surface as domain.ErrDuplicateEmployee.
type EmployeeRepository interface {
	List(ctx context.Context) ([]domain.Employee, error)
	FindByID(ctx context.Context, id string) (*domain.Employee, error)
	Create(ctx context.Context, emp *domain.Employee) (*domain.Employee, error)
	Update(ctx context.Context, emp *domain.Employee) error
	Delete(ctx context.Context, id string) error
}
