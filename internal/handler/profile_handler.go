package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gauravmb/portfolio-backend/internal/model"
	"github.com/gauravmb/portfolio-backend/internal/repository"
	"github.com/gauravmb/portfolio-backend/internal/service"
	"github.com/gauravmb/portfolio-backend/internal/validation"
)

// ProfileHandler handles the public profile read and the admin profile
// update.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a ProfileHandler with the given service.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

type profileResponse struct {
	Profile *model.Profile `json:"profile"`
}

// Get handles GET /api/profile. The profile is publicly readable in full.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profileService.Get(r.Context())
	if errors.Is(err, repository.ErrNotFound) {
		respondNotFound(w)
		return
	}
	if err != nil {
		respondInternal(w, "get profile", err)
		return
	}
	respondJSON(w, http.StatusOK, profileResponse{Profile: profile})
}

// Update handles PUT /api/admin/profile. The body is a partial document:
// only keys present in the JSON are applied.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	existing, err := h.profileService.Get(r.Context())
	if errors.Is(err, repository.ErrNotFound) {
		respondNotFound(w)
		return
	}
	if err != nil {
		respondInternal(w, "get profile", err)
		return
	}

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		respondBadRequest(w, "invalid JSON body")
		return
	}

	if b, ok := raw["email"]; ok {
		var v string
		_ = json.Unmarshal(b, &v)
		if !validation.ValidEmail(v) {
			respondValidation(w, map[string]string{"email": "email is not a valid address"})
			return
		}
		existing.Email = v
	}
	applyString(raw, "name", &existing.Name)
	applyString(raw, "title", &existing.Title)
	applyString(raw, "bio", &existing.Bio)
	applyString(raw, "location", &existing.Location)
	applyString(raw, "github_url", &existing.GitHubURL)
	applyString(raw, "linkedin_url", &existing.LinkedIn)
	applyString(raw, "resume_url", &existing.ResumeURL)
	if b, ok := raw["skills"]; ok {
		var v []string
		_ = json.Unmarshal(b, &v)
		existing.Skills = v
	}

	if err := h.profileService.Update(r.Context(), existing); err != nil {
		respondInternal(w, "update profile", err)
		return
	}
	respondJSON(w, http.StatusOK, profileResponse{Profile: existing})
}
