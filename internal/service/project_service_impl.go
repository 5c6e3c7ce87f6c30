package service

import (
	"context"

	"github.com/gauravmb/portfolio-backend/internal/model"
	"github.com/gauravmb/portfolio-backend/internal/repository"
)

// projectServiceImpl is the production implementation of ProjectService.
type projectServiceImpl struct {
	repo repository.ProjectRepository
}

// NewProjectService creates a ProjectService backed by the given repository.
func NewProjectService(repo repository.ProjectRepository) ProjectService {
	return &projectServiceImpl{repo: repo}
}

func (s *projectServiceImpl) ListPublished(ctx context.Context) ([]*model.Project, error) {
	return s.repo.ListPublished(ctx)
}

// GetPublished hides unpublished projects behind ErrNotFound.
func (s *projectServiceImpl) GetPublished(ctx context.Context, id string) (*model.Project, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.Published {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

func (s *projectServiceImpl) List(ctx context.Context) ([]*model.Project, error) {
	return s.repo.List(ctx)
}

func (s *projectServiceImpl) Get(ctx context.Context, id string) (*model.Project, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *projectServiceImpl) Create(ctx context.Context, p *model.Project) error {
	return s.repo.Create(ctx, p)
}

func (s *projectServiceImpl) Update(ctx context.Context, p *model.Project) error {
	return s.repo.Update(ctx, p)
}

func (s *projectServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *projectServiceImpl) SetImageURL(ctx context.Context, id, imageURL string) error {
	return s.repo.UpdateImageURL(ctx, id, imageURL)
}
