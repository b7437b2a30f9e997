package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/peoplehub/hrm-api/internal/core/domain"
	"github.com/peoplehub/hrm-api/internal/core/ports"
)

const cacheKindEmployee = "employee"

// EmployeeService orchestrates employee CRUD. It resolves department and
// job-role names on reads and verifies both references exist before any write.
type EmployeeService struct {
	repo     ports.EmployeeRepository
	deptRepo ports.DepartmentRepository
	roleRepo ports.JobRoleRepository
	cache    ports.EntityCache
	logger   zerolog.Logger
}

func NewEmployeeService(repo ports.EmployeeRepository, deptRepo ports.DepartmentRepository, roleRepo ports.JobRoleRepository, cache ports.EntityCache, logger zerolog.Logger) *EmployeeService {
	return &EmployeeService{repo: repo, deptRepo: deptRepo, roleRepo: roleRepo, cache: cache, logger: logger}
}

func (s *EmployeeService) List(ctx context.Context) ([]ports.EmployeeDetail, error) {
	emps, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	// Name lookups are memoized per request; listings cluster around few
	// departments and titles.
	deptNames := make(map[string]string)
	roleNames := make(map[string]string)

	details := make([]ports.EmployeeDetail, 0, len(emps))
	for _, emp := range emps {
		detail := ports.EmployeeDetail{Employee: emp}
		detail.DepartmentName = s.departmentName(ctx, deptNames, emp.DepartmentID)
		detail.RoleName = s.roleName(ctx, roleNames, emp.RoleID)
		details = append(details, detail)
	}
	return details, nil
}

func (s *EmployeeService) Get(ctx context.Context, id string) (*ports.EmployeeDetail, error) {
	var emp *domain.Employee

	if s.cache != nil {
		var cached domain.Employee
		hit, err := s.cache.Get(ctx, cacheKindEmployee, id, &cached)
		if err != nil {
			s.logger.Warn().Err(err).Str("id", id).Msg("employee cache read failed")
		} else if hit {
			emp = &cached
		}
	}

	if emp == nil {
		found, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		emp = found
		if s.cache != nil {
			if err := s.cache.Set(ctx, cacheKindEmployee, id, emp); err != nil {
				s.logger.Warn().Err(err).Str("id", id).Msg("employee cache write failed")
			}
		}
	}

	return s.detail(ctx, emp), nil
}

func (s *EmployeeService) Create(ctx context.Context, input ports.CreateEmployeeInput) (*ports.EmployeeDetail, error) {
	if err := s.checkReferences(ctx, input.DepartmentID, input.RoleID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	emp := &domain.Employee{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		Phone:        input.Phone,
		HireDate:     input.HireDate,
		Salary:       input.Salary,
		DepartmentID: input.DepartmentID,
		RoleID:       input.RoleID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, emp)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("employee_id", created.ID).Str("email", created.Email).Msg("employee created")
	return s.detail(ctx, created), nil
}

func (s *EmployeeService) Update(ctx context.Context, id string, input ports.CreateEmployeeInput) (*ports.EmployeeDetail, error) {
	emp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, input.DepartmentID, input.RoleID); err != nil {
		return nil, err
	}

	emp.FirstName = input.FirstName
	emp.LastName = input.LastName
	emp.Email = input.Email
	emp.Phone = input.Phone
	emp.HireDate = input.HireDate
	emp.Salary = input.Salary
	emp.DepartmentID = input.DepartmentID
	emp.RoleID = input.RoleID
	emp.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, emp); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return s.detail(ctx, emp), nil
}

func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	s.logger.Info().Str("employee_id", id).Msg("employee deleted")
	return nil
}

func (s *EmployeeService) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, cacheKindEmployee, id); err != nil {
		s.logger.Warn().Err(err).Str("id", id).Msg("employee cache invalidation failed")
	}
}

// checkReferences verifies department and job role exist before a write.
func (s *EmployeeService) checkReferences(ctx context.Context, departmentID, roleID string) error {
	if _, err := s.deptRepo.FindByID(ctx, departmentID); err != nil {
		return err
	}
	if _, err := s.roleRepo.FindByID(ctx, roleID); err != nil {
		return err
	}
	return nil
}

func (s *EmployeeService) detail(ctx context.Context, emp *domain.Employee) *ports.EmployeeDetail {
	detail := &ports.EmployeeDetail{Employee: *emp}
	detail.DepartmentName = s.departmentName(ctx, nil, emp.DepartmentID)
	detail.RoleName = s.roleName(ctx, nil, emp.RoleID)
	return detail
}

func (s *EmployeeService) departmentName(ctx context.Context, memo map[string]string, id string) string {
	if memo != nil {
		if name, ok := memo[id]; ok {
			return name
		}
	}
	name := ""
	if dept, err := s.deptRepo.FindByID(ctx, id); err == nil {
		name = dept.Name
	}
	if memo != nil {
		memo[id] = name
	}
	return name
}

func (s *EmployeeService) roleName(ctx context.Context, memo map[string]string, id string) string {
	if memo != nil {
		if name, ok := memo[id]; ok {
			return name
		}
	}
	name := ""
	if role, err := s.roleRepo.FindByID(ctx, id); err == nil {
		name = role.Title
	}
	if memo != nil {
		memo[id] = name
	}
	return name
}
