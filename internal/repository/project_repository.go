package repository

import (
	"context"

	"github.com/gauravmb/portfolio-backend/internal/model"
)

// ProjectRepository is the persistence interface for portfolio projects.
// Visibility filtering happens in the queries themselves: ListPublished
// must never return a draft, GetByID never filters (the service layer
// decides whether an unpublished project is presentable).
type ProjectRepository interface {
	ListPublished(ctx context.Context) ([]*model.Project, error)
	List(ctx context.Context) ([]*model.Project, error)
	GetByID(ctx context.Context, id string) (*model.Project, error)
	Create(ctx context.Context, p *model.Project) error
	Update(ctx context.Context, p *model.Project) error
	Delete(ctx context.Context, id string) error
	UpdateImageURL(ctx context.Context, id, imageURL string) error
}
