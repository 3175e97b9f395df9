package projectservice

import (
	"context"
	"errors"

	"github.com/zestbet/zestbet/internal/domain"
)

//go:generate mockgen -source=projectservice.go -destination=mocks.go -package=projectservice

type ProjectRepo interface {
	FindAll(ctx context.Context) ([]domain.ImpactProject, error)
	FindFeatured(ctx context.Context) (*domain.ImpactProject, error)
}

var ErrNoFeaturedProject = errors.New("no featured project")

type Service struct {
	projectRepo ProjectRepo
}

func New(projectRepo ProjectRepo) *Service {
	return &Service{projectRepo: projectRepo}
}

func (s *Service) ListProjects(ctx context.Context) ([]domain.ImpactProject, error) {
	return s.projectRepo.FindAll(ctx)
}

func (s *Service) Featured(ctx context.Context) (*domain.ImpactProject, error) {
	project, err := s.projectRepo.FindFeatured(ctx)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrNoFeaturedProject
	}
	return project, nil
}
