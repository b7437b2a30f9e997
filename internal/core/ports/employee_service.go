package ports

import (
	"context"
	"time"

	"github.com/peoplehub/hrm-api/internal/core/domain"
)

type CreateEmployeeInput struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	HireDate     time.Time
	Salary       float64
	DepartmentID string
	RoleID       string
}

// EmployeeDetail is an employee with its department and job-role names
// resolved, matching what clients render in listings.
type EmployeeDetail struct {
	domain.Employee
	DepartmentName string `json:"department_name"`
	RoleName       string `json:"role_name"`
}

type EmployeeService interface {
	List(ctx context.Context) ([]EmployeeDetail, error)
	Get(ctx context.Context, id string) (*EmployeeDetail, error)
	Create(ctx context.Context, input CreateEmployeeInput) (*EmployeeDetail, error)
	Update(ctx context.Context, id string, input CreateEmployeeInput) (*EmployeeDetail, error)
	Delete(ctx context.Context, id string) error
}
