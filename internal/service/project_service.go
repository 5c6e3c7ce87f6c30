package service

import (
	"context"

	"github.com/gauravmb/portfolio-backend/internal/model"
)

// ProjectService defines the business logic for portfolio projects. The
// public methods apply visibility filtering; the admin methods never do.
type ProjectService interface {
	// ListPublished returns published projects, newest first.
	ListPublished(ctx context.Context) ([]*model.Project, error)

	// GetPublished returns a project only if it is published. An
	// unpublished project is reported as repository.ErrNotFound so the
	// public path cannot tell hidden from absent.
	GetPublished(ctx context.Context, id string) (*model.Project, error)

	// Admin operations: no visibility filtering.
	List(ctx context.Context) ([]*model.Project, error)
	Get(ctx context.Context, id string) (*model.Project, error)
	Create(ctx context.Context, p *model.Project) error
	Update(ctx context.Context, p *model.Project) error
	Delete(ctx context.Context, id string) error
	SetImageURL(ctx context.Context, id, imageURL string) error
}
