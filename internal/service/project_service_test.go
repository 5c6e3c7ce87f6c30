package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gauravmb/portfolio-backend/internal/model"
	"github.com/gauravmb/portfolio-backend/internal/repository"
)

// ---------------------------------------------------------------------------
// Mock ProjectRepository
// ---------------------------------------------------------------------------

type mockProjectRepo struct {
	listPublishedFunc  func(ctx context.Context) ([]*model.Project, error)
	listFunc           func(ctx context.Context) ([]*model.Project, error)
	getByIDFunc        func(ctx context.Context, id string) (*model.Project, error)
	createFunc         func(ctx context.Context, p *model.Project) error
	updateFunc         func(ctx context.Context, p *model.Project) error
	deleteFunc         func(ctx context.Context, id string) error
	updateImageURLFunc func(ctx context.Context, id, imageURL string) error
}

func (m *mockProjectRepo) ListPublished(ctx context.Context) ([]*model.Project, error) {
	if m.listPublishedFunc != nil {
		return m.listPublishedFunc(ctx)
	}
	return nil, nil
}

func (m *mockProjectRepo) List(ctx context.Context) ([]*model.Project, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockProjectRepo) GetByID(ctx context.Context, id string) (*model.Project, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockProjectRepo) Create(ctx context.Context, p *model.Project) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectRepo) Update(ctx context.Context, p *model.Project) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockProjectRepo) UpdateImageURL(ctx context.Context, id, imageURL string) error {
	if m.updateImageURLFunc != nil {
		return m.updateImageURLFunc(ctx, id, imageURL)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Visibility
// ---------------------------------------------------------------------------

func TestProjectService_GetPublished_HidesUnpublished(t *testing.T) {
	mock := &mockProjectRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.Project, error) {
			return &model.Project{ID: id, Title: "Draft", Published: false}, nil
		},
	}
	svc := NewProjectService(mock)

	_, err := svc.GetPublished(context.Background(), "abc123")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected an unpublished project to look absent, got %v", err)
	}
}

func TestProjectService_GetPublished_ReturnsPublished(t *testing.T) {
	mock := &mockProjectRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.Project, error) {
			return &model.Project{ID: id, Title: "Live", Published: true}, nil
		},
	}
	svc := NewProjectService(mock)

	p, err := svc.GetPublished(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("expected a published project to be returned, got %v", err)
	}
	if p.Title != "Live" {
		t.Errorf("unexpected project %+v", p)
	}
}

func TestProjectService_GetPublished_MissingID(t *testing.T) {
	svc := NewProjectService(&mockProjectRepo{})

	_, err := svc.GetPublished(context.Background(), "does-not-exist")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

// Admin Get returns the record regardless of visibility.
func TestProjectService_Get_ReturnsUnpublished(t *testing.T) {
	mock := &mockProjectRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.Project, error) {
			return &model.Project{ID: id, Published: false}, nil
		},
	}
	svc := NewProjectService(mock)

	p, err := svc.Get(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("expected admin Get to succeed on a draft, got %v", err)
	}
	if p.Published {
		t.Error("expected the draft to come back unpublished")
	}
}

func TestProjectService_ListPublished_PassesThrough(t *testing.T) {
	want := []*model.Project{{ID: "a", Published: true}, {ID: "b", Published: true}}
	mock := &mockProjectRepo{
		listPublishedFunc: func(ctx context.Context) ([]*model.Project, error) {
			return want, nil
		},
	}
	svc := NewProjectService(mock)

	got, err := svc.ListPublished(context.Background())
	if err != nil {
		t.Fatalf("ListPublished failed: %v", err)
	}
	if len(got) != 2 || got[0].ID != "a" {
		t.Errorf("unexpected result %v", got)
	}
}
