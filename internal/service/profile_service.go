package service

import (
	"context"

	"github.com/gauravmb/portfolio-backend/internal/model"
)

// ProfileService defines the business logic for the singleton owner profile.
type ProfileService interface {
	Get(ctx context.Context) (*model.Profile, error)
	Update(ctx context.Context, p *model.Profile) error
}
