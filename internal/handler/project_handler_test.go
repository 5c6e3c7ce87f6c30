package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gauravmb/portfolio-backend/internal/model"
	"github.com/gauravmb/portfolio-backend/internal/repository"
)

// ---------------------------------------------------------------------------
// Mock ProjectService
// ---------------------------------------------------------------------------

type mockProjectService struct {
	listPublishedFunc func(ctx context.Context) ([]*model.Project, error)
	getPublishedFunc  func(ctx context.Context, id string) (*model.Project, error)
	listFunc          func(ctx context.Context) ([]*model.Project, error)
	getFunc           func(ctx context.Context, id string) (*model.Project, error)
	createFunc        func(ctx context.Context, p *model.Project) error
	updateFunc        func(ctx context.Context, p *model.Project) error
	deleteFunc        func(ctx context.Context, id string) error
	setImageURLFunc   func(ctx context.Context, id, imageURL string) error
}

func (m *mockProjectService) ListPublished(ctx context.Context) ([]*model.Project, error) {
	if m.listPublishedFunc != nil {
		return m.listPublishedFunc(ctx)
	}
	return nil, nil
}

func (m *mockProjectService) GetPublished(ctx context.Context, id string) (*model.Project, error) {
	if m.getPublishedFunc != nil {
		return m.getPublishedFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockProjectService) List(ctx context.Context) ([]*model.Project, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockProjectService) Get(ctx context.Context, id string) (*model.Project, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockProjectService) Create(ctx context.Context, p *model.Project) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectService) Update(ctx context.Context, p *model.Project) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectService) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockProjectService) SetImageURL(ctx context.Context, id, imageURL string) error {
	if m.setImageURLFunc != nil {
		return m.setImageURLFunc(ctx, id, imageURL)
	}
	return nil
}

// newIDRequest builds a request with the {id} path value populated, the
// way ServeMux would.
func newIDRequest(method, target, id, body string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	r.SetPathValue("id", id)
	return r
}

// ---------------------------------------------------------------------------
// Public routes
// ---------------------------------------------------------------------------

func TestProjectHandler_List_PublishedOnly(t *testing.T) {
	mock := &mockProjectService{
		listPublishedFunc: func(ctx context.Context) ([]*model.Project, error) {
			return []*model.Project{{ID: "a", Title: "One", Published: true}}, nil
		},
	}
	h := NewProjectHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp projectListResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(resp.Projects) != 1 || resp.Projects[0].ID != "a" {
		t.Errorf("unexpected projects %+v", resp.Projects)
	}
}

// Empty listings serialize as [] rather than null.
func TestProjectHandler_List_EmptyIsArray(t *testing.T) {
	h := NewProjectHandler(&mockProjectService{})

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if !strings.Contains(rec.Body.String(), `"projects":[]`) {
		t.Errorf("expected an empty array, got %s", rec.Body.String())
	}
}

func TestProjectHandler_Get_NotFound(t *testing.T) {
	h := NewProjectHandler(&mockProjectService{})

	rec := httptest.NewRecorder()
	h.Get(rec, newIDRequest(http.MethodGet, "/api/projects/does-not-exist", "does-not-exist", ""))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("error body is not valid JSON: %v", err)
	}
	if resp["code"] != CodeNotFound {
		t.Errorf("expected code=%s, got %v", CodeNotFound, resp["code"])
	}
}

// The public path answers identically whether the id is missing or the
// project exists unpublished; the admin path returns the draft.
func TestProjectHandler_UnpublishedHiddenFromPublicOnly(t *testing.T) {
	draft := &model.Project{ID: "abc123", Title: "Draft", Published: false}
	mock := &mockProjectService{
		getPublishedFunc: func(ctx context.Context, id string) (*model.Project, error) {
			return nil, repository.ErrNotFound
		},
		getFunc: func(ctx context.Context, id string) (*model.Project, error) {
			return draft, nil
		},
	}
	h := NewProjectHandler(mock)

	rec := httptest.NewRecorder()
	h.Get(rec, newIDRequest(http.MethodGet, "/api/projects/abc123", "abc123", ""))
	if rec.Code != http.StatusNotFound {
		t.Errorf("public: expected 404 for a draft, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.AdminGet(rec, newIDRequest(http.MethodGet, "/api/admin/projects/abc123", "abc123", ""))
	if rec.Code != http.StatusOK {
		t.Fatalf("admin: expected 200 for a draft, got %d", rec.Code)
	}
	var resp projectResponse
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if resp.Project == nil || resp.Project.ID != "abc123" || resp.Project.Published {
		t.Errorf("admin: unexpected project %+v", resp.Project)
	}
}

func TestProjectHandler_Get_Published(t *testing.T) {
	mock := &mockProjectService{
		getPublishedFunc: func(ctx context.Context, id string) (*model.Project, error) {
			return &model.Project{ID: id, Title: "Live", Published: true}, nil
		},
	}
	h := NewProjectHandler(mock)

	rec := httptest.NewRecorder()
	h.Get(rec, newIDRequest(http.MethodGet, "/api/projects/abc123", "abc123", ""))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp projectResponse
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if resp.Project == nil || resp.Project.Title != "Live" {
		t.Errorf("unexpected project %+v", resp.Project)
	}
}

// ---------------------------------------------------------------------------
// Admin routes
// ---------------------------------------------------------------------------

func TestProjectHandler_Create_Success(t *testing.T) {
	var captured *model.Project
	mock := &mockProjectService{
		createFunc: func(ctx context.Context, p *model.Project) error {
			captured = p
			p.ID = "new-id"
			return nil
		},
	}
	h := NewProjectHandler(mock)

	body := `{"title":"New Project","short_description":"short","published":true,"display_order":2}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/projects", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d — body: %s", rec.Code, rec.Body.String())
	}
	if captured == nil || captured.Title != "New Project" || !captured.Published || captured.DisplayOrder != 2 {
		t.Errorf("unexpected created project %+v", captured)
	}
}

func TestProjectHandler_Create_TitleRequired(t *testing.T) {
	h := NewProjectHandler(&mockProjectService{})

	req := httptest.NewRequest(http.MethodPost, "/api/admin/projects", strings.NewReader(`{"description":"x"}`))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestProjectHandler_Update_Partial(t *testing.T) {
	existing := &model.Project{ID: "abc123", Title: "Old", ShortDescription: "keep me", Published: false}
	var updated *model.Project
	mock := &mockProjectService{
		getFunc: func(ctx context.Context, id string) (*model.Project, error) {
			return existing, nil
		},
		updateFunc: func(ctx context.Context, p *model.Project) error {
			updated = p
			return nil
		},
	}
	h := NewProjectHandler(mock)

	rec := httptest.NewRecorder()
	h.Update(rec, newIDRequest(http.MethodPut, "/api/admin/projects/abc123", "abc123", `{"published":true}`))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}
	if updated == nil {
		t.Fatal("expected Update to be called")
	}
	if !updated.Published {
		t.Error("expected published to be toggled on")
	}
	if updated.Title != "Old" || updated.ShortDescription != "keep me" {
		t.Errorf("untouched fields were modified: %+v", updated)
	}
}

func TestProjectHandler_Update_NotFound(t *testing.T) {
	h := NewProjectHandler(&mockProjectService{})

	rec := httptest.NewRecorder()
	h.Update(rec, newIDRequest(http.MethodPut, "/api/admin/projects/nope", "nope", `{"title":"X"}`))

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestProjectHandler_Update_EmptyTitleRejected(t *testing.T) {
	mock := &mockProjectService{
		getFunc: func(ctx context.Context, id string) (*model.Project, error) {
			return &model.Project{ID: id, Title: "Old"}, nil
		},
		updateFunc: func(ctx context.Context, p *model.Project) error {
			t.Error("Update must not be called with an empty title")
			return nil
		},
	}
	h := NewProjectHandler(mock)

	rec := httptest.NewRecorder()
	h.Update(rec, newIDRequest(http.MethodPut, "/api/admin/projects/abc123", "abc123", `{"title":""}`))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestProjectHandler_Delete_Success(t *testing.T) {
	var deletedID string
	mock := &mockProjectService{
		deleteFunc: func(ctx context.Context, id string) error {
			deletedID = id
			return nil
		},
	}
	h := NewProjectHandler(mock)

	rec := httptest.NewRecorder()
	h.Delete(rec, newIDRequest(http.MethodDelete, "/api/admin/projects/abc123", "abc123", ""))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if deletedID != "abc123" {
		t.Errorf("expected delete of abc123, got %q", deletedID)
	}
}

func TestProjectHandler_Delete_NotFound(t *testing.T) {
	mock := &mockProjectService{
		deleteFunc: func(ctx context.Context, id string) error {
			return repository.ErrNotFound
		},
	}
	h := NewProjectHandler(mock)

	rec := httptest.NewRecorder()
	h.Delete(rec, newIDRequest(http.MethodDelete, "/api/admin/projects/nope", "nope", ""))

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestProjectHandler_List_ServiceError(t *testing.T) {
	mock := &mockProjectService{
		listPublishedFunc: func(ctx context.Context) ([]*model.Project, error) {
			return nil, errors.New("store unavailable")
		},
	}
	h := NewProjectHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}
