package repository

import (
	"context"

	"github.com/gauravmb/portfolio-backend/internal/model"
)

// ProfileRepository is the persistence interface for the singleton owner
// profile. The row is seeded by migrations; there is no Create.
type ProfileRepository interface {
	Get(ctx context.Context) (*model.Profile, error)
	Update(ctx context.Context, p *model.Profile) error
}
