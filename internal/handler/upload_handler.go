package handler

import (
	"errors"
	"net/http"
	"path"

	"github.com/gauravmb/portfolio-backend/internal/repository"
	"github.com/gauravmb/portfolio-backend/internal/service"
	"github.com/gauravmb/portfolio-backend/internal/storage"
)

const maxImageSize = 5 << 20 // 5 MB

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// UploadHandler handles admin image uploads. It sits behind RequireAdmin.
// Images are either uploaded standalone (the URL is attached by a follow-up
// admin call) or uploaded and attached to a project in one step.
type UploadHandler struct {
	storage        storage.Storage
	projectService service.ProjectService
}

// NewUploadHandler creates an UploadHandler with the given storage backend
// and project service.
func NewUploadHandler(store storage.Storage, projectService service.ProjectService) *UploadHandler {
	return &UploadHandler{storage: store, projectService: projectService}
}

// saveImage reads the "image" multipart part, checks it against the MIME
// allow-list and the size ceiling, and stores it. On failure the error
// response has already been written and ok is false.
func (h *UploadHandler) saveImage(w http.ResponseWriter, r *http.Request) (url, key string, ok bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImageSize+4096)
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		respondValidation(w, map[string]string{"image": "file exceeds the size limit"})
		return "", "", false
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		respondValidation(w, map[string]string{"image": "image file is required"})
		return "", "", false
	}
	defer file.Close()

	if header.Size > maxImageSize {
		respondValidation(w, map[string]string{"image": "file exceeds the size limit"})
		return "", "", false
	}

	ct := header.Header.Get("Content-Type")
	ext, found := allowedImageTypes[ct]
	if !found {
		respondValidation(w, map[string]string{"image": "unsupported content type"})
		return "", "", false
	}

	key = storage.NewKey(ext)
	url, err = h.storage.Save(r.Context(), key, file, ct)
	if err != nil {
		respondInternal(w, "store upload", err)
		return "", "", false
	}
	return url, key, true
}

// Upload handles POST /api/admin/upload. The payload is a multipart form
// with an "image" file; the resulting URL is returned for the caller to
// attach wherever it belongs.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	url, key, ok := h.saveImage(w, r)
	if !ok {
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{
		"url": url,
		"key": path.Base(key),
	})
}

// Attach handles POST /api/admin/projects/{id}/image: store the uploaded
// image and set it as the project's cover image. When the project does not
// exist the stored object is removed again.
func (h *UploadHandler) Attach(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	url, key, ok := h.saveImage(w, r)
	if !ok {
		return
	}

	if err := h.projectService.SetImageURL(r.Context(), id, url); err != nil {
		_ = h.storage.Delete(r.Context(), key)
		if errors.Is(err, repository.ErrNotFound) {
			respondNotFound(w)
			return
		}
		respondInternal(w, "attach project image", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"url": url})
}
