package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/peoplehub/hrm-api/internal/core/domain"
	"github.com/peoplehub/hrm-api/internal/core/ports"
)

const cacheKindJobRole = "job_role"

type JobRoleService struct {
	repo   ports.JobRoleRepository
	cache  ports.EntityCache
	logger zerolog.Logger
}

func NewJobRoleService(repo ports.JobRoleRepository, cache ports.EntityCache, logger zerolog.Logger) *JobRoleService {
	return &JobRoleService{repo: repo, cache: cache, logger: logger}
}

func (s *JobRoleService) List(ctx context.Context) ([]domain.JobRole, error) {
	return s.repo.List(ctx)
}

func (s *JobRoleService) Get(ctx context.Context, id string) (*domain.JobRole, error) {
	if s.cache != nil {
		var cached domain.JobRole
		hit, err := s.cache.Get(ctx, cacheKindJobRole, id, &cached)
		if err != nil {
			s.logger.Warn().Err(err).Str("id", id).Msg("job role cache read failed")
		} else if hit {
			return &cached, nil
		}
	}

	role, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKindJobRole, id, role); err != nil {
			s.logger.Warn().Err(err).Str("id", id).Msg("job role cache write failed")
		}
	}
	return role, nil
}

func (s *JobRoleService) Create(ctx context.Context, input ports.CreateJobRoleInput) (*domain.JobRole, error) {
	now := time.Now().UTC()
	role := &domain.JobRole{
		Title:       input.Title,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, role)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("job_role_id", created.ID).Str("title", created.Title).Msg("job role created")
	return created, nil
}

func (s *JobRoleService) Update(ctx context.Context, id string, input ports.CreateJobRoleInput) (*domain.JobRole, error) {
	role, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	role.Title = input.Title
	role.Description = input.Description
	role.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, role); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return role, nil
}

func (s *JobRoleService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	s.logger.Info().Str("job_role_id", id).Msg("job role deleted")
	return nil
}

func (s *JobRoleService) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, cacheKindJobRole, id); err != nil {
		s.logger.Warn().Err(err).Str("id", id).Msg("job role cache invalidation failed")
	}
}
