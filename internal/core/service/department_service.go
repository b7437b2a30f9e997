package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/peoplehub/hrm-api/internal/core/domain"
	"github.com/peoplehub/hrm-api/internal/core/ports"
)

const cacheKindDepartment = "department"

type DepartmentService struct {
	repo   ports.DepartmentRepository
	cache  ports.EntityCache
	logger zerolog.Logger
}

// NewDepartmentService creates a DepartmentService. cache may be nil, in which
// case every read goes straight to the repository.
func NewDepartmentService(repo ports.DepartmentRepository, cache ports.EntityCache, logger zerolog.Logger) *DepartmentService {
	return &DepartmentService{repo: repo, cache: cache, logger: logger}
}

func (s *DepartmentService) List(ctx context.Context) ([]domain.Department, error) {
	return s.repo.List(ctx)
}

func (s *DepartmentService) Get(ctx context.Context, id string) (*domain.Department, error) {
	if s.cache != nil {
		var cached domain.Department
		hit, err := s.cache.Get(ctx, cacheKindDepartment, id, &cached)
		if err != nil {
			s.logger.Warn().Err(err).Str("id", id).Msg("department cache read failed")
		} else if hit {
			return &cached, nil
		}
	}

	dept, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKindDepartment, id, dept); err != nil {
			s.logger.Warn().Err(err).Str("id", id).Msg("department cache write failed")
		}
	}
	return dept, nil
}

func (s *DepartmentService) Create(ctx context.Context, input ports.CreateDepartmentInput) (*domain.Department, error) {
	now := time.Now().UTC()
	dept := &domain.Department{
		Name:        input.Name,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, dept)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("department_id", created.ID).Str("name", created.Name).Msg("department created")
	return created, nil
}

func (s *DepartmentService) Update(ctx context.Context, id string, input ports.CreateDepartmentInput) (*domain.Department, error) {
	dept, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dept.Name = input.Name
	dept.Description = input.Description
	dept.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, dept); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return dept, nil
}

func (s *DepartmentService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	s.logger.Info().Str("department_id", id).Msg("department deleted")
	return nil
}

func (s *DepartmentService) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, cacheKindDepartment, id); err != nil {
		s.logger.Warn().Err(err).Str("id", id).Msg("department cache invalidation failed")
	}
}
