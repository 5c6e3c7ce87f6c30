package service

import (
	"context"

	"github.com/gauravmb/portfolio-backend/internal/model"
	"github.com/gauravmb/portfolio-backend/internal/repository"
)

// profileServiceImpl is the production implementation of ProfileService.
type profileServiceImpl struct {
	repo repository.ProfileRepository
}

// NewProfileService creates a ProfileService backed by the given repository.
func NewProfileService(repo repository.ProfileRepository) ProfileService {
	return &profileServiceImpl{repo: repo}
}

func (s *profileServiceImpl) Get(ctx context.Context) (*model.Profile, error) {
	return s.repo.Get(ctx)
}

func (s *profileServiceImpl) Update(ctx context.Context, p *model.Profile) error {
	return s.repo.Update(ctx, p)
}
