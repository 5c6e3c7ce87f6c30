package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gauravmb/portfolio-backend/internal/model"
	"github.com/gauravmb/portfolio-backend/internal/repository"
	"github.com/gauravmb/portfolio-backend/internal/service"
)

// ProjectHandler handles the public and admin project routes. Public
// reads are visibility-filtered; admin routes sit behind RequireAdmin.
type ProjectHandler struct {
	projectService service.ProjectService
}

// NewProjectHandler creates a ProjectHandler with the given service.
func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

type projectListResponse struct {
	Projects []*model.Project `json:"projects"`
}

type projectResponse struct {
	Project *model.Project `json:"project"`
}

// List handles GET /api/projects. Published projects only, newest first.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.ListPublished(r.Context())
	if err != nil {
		respondInternal(w, "list published projects", err)
		return
	}
	if projects == nil {
		projects = []*model.Project{}
	}
	respondJSON(w, http.StatusOK, projectListResponse{Projects: projects})
}

// Get handles GET /api/projects/{id}. An unpublished id answers exactly
// like a missing one.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	project, err := h.projectService.GetPublished(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		respondNotFound(w)
		return
	}
	if err != nil {
		respondInternal(w, "get project", err)
		return
	}
	respondJSON(w, http.StatusOK, projectResponse{Project: project})
}

// AdminList handles GET /api/admin/projects. All projects, any visibility.
func (h *ProjectHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.List(r.Context())
	if err != nil {
		respondInternal(w, "list projects", err)
		return
	}
	if projects == nil {
		projects = []*model.Project{}
	}
	respondJSON(w, http.StatusOK, projectListResponse{Projects: projects})
}

// AdminGet handles GET /api/admin/projects/{id}; drafts are returned in full.
func (h *ProjectHandler) AdminGet(w http.ResponseWriter, r *http.Request) {
	project, err := h.projectService.Get(r.Context(), r.PathValue("id"))
	if errors.Is(err, repository.ErrNotFound) {
		respondNotFound(w)
		return
	}
	if err != nil {
		respondInternal(w, "get project", err)
		return
	}
	respondJSON(w, http.StatusOK, projectResponse{Project: project})
}

// createProjectRequest is the expected body for POST /api/admin/projects.
type createProjectRequest struct {
	Title            string   `json:"title"`
	ShortDescription string   `json:"short_description"`
	Description      string   `json:"description"`
	ImageURL         string   `json:"image_url"`
	GalleryURLs      []string `json:"gallery_urls"`
	Category         string   `json:"category"`
	RepoURL          string   `json:"repo_url"`
	LiveURL          string   `json:"live_url"`
	Featured         bool     `json:"featured"`
	Published        bool     `json:"published"`
	DisplayOrder     int      `json:"display_order"`
}

// Create handles POST /api/admin/projects.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid JSON body")
		return
	}

	if req.Title == "" {
		respondValidation(w, map[string]string{"title": "title is required"})
		return
	}

	project := &model.Project{
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
		ImageURL:         req.ImageURL,
		GalleryURLs:      req.GalleryURLs,
		Category:         req.Category,
		RepoURL:          req.RepoURL,
		LiveURL:          req.LiveURL,
		Featured:         req.Featured,
		Published:        req.Published,
		DisplayOrder:     req.DisplayOrder,
	}

	if err := h.projectService.Create(r.Context(), project); err != nil {
		respondInternal(w, "create project", err)
		return
	}
	respondJSON(w, http.StatusCreated, projectResponse{Project: project})
}

// Update handles PUT /api/admin/projects/{id}. The body is a partial
// document: only keys present in the JSON are applied.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	existing, err := h.projectService.Get(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		respondNotFound(w)
		return
	}
	if err != nil {
		respondInternal(w, "get project", err)
		return
	}

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		respondBadRequest(w, "invalid JSON body")
		return
	}

	if b, ok := raw["title"]; ok {
		var v string
		_ = json.Unmarshal(b, &v)
		if v == "" {
			respondValidation(w, map[string]string{"title": "title must not be empty"})
			return
		}
		existing.Title = v
	}
	applyString(raw, "short_description", &existing.ShortDescription)
	applyString(raw, "description", &existing.Description)
	applyString(raw, "image_url", &existing.ImageURL)
	applyString(raw, "category", &existing.Category)
	applyString(raw, "repo_url", &existing.RepoURL)
	applyString(raw, "live_url", &existing.LiveURL)
	if b, ok := raw["gallery_urls"]; ok {
		var v []string
		_ = json.Unmarshal(b, &v)
		existing.GalleryURLs = v
	}
	applyBool(raw, "featured", &existing.Featured)
	applyBool(raw, "published", &existing.Published)
	if b, ok := raw["display_order"]; ok {
		var v int
		_ = json.Unmarshal(b, &v)
		existing.DisplayOrder = v
	}

	if err := h.projectService.Update(r.Context(), existing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondNotFound(w)
			return
		}
		respondInternal(w, "update project", err)
		return
	}
	respondJSON(w, http.StatusOK, projectResponse{Project: existing})
}

// Delete handles DELETE /api/admin/projects/{id}.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.projectService.Delete(r.Context(), r.PathValue("id"))
	if errors.Is(err, repository.ErrNotFound) {
		respondNotFound(w)
		return
	}
	if err != nil {
		respondInternal(w, "delete project", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func applyString(raw map[string]json.RawMessage, key string, dst *string) {
	if b, ok := raw[key]; ok {
		var v string
		_ = json.Unmarshal(b, &v)
		*dst = v
	}
}

func applyBool(raw map[string]json.RawMessage, key string, dst *bool) {
	if b, ok := raw[key]; ok {
		var v bool
		_ = json.Unmarshal(b, &v)
		*dst = v
	}
}
