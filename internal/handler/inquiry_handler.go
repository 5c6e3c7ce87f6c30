package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gauravmb/portfolio-backend/internal/model"
	"github.com/gauravmb/portfolio-backend/internal/repository"
	"github.com/gauravmb/portfolio-backend/internal/service"
)

// InquiryHandler handles the admin-only inquiry routes. Inquiries are
// never publicly readable; all routes here sit behind RequireAdmin.
type InquiryHandler struct {
	inquiryService service.InquiryService
}

// NewInquiryHandler creates an InquiryHandler with the given service.
func NewInquiryHandler(inquiryService service.InquiryService) *InquiryHandler {
	return &InquiryHandler{inquiryService: inquiryService}
}

type inquiryListResponse struct {
	Inquiries []*model.Inquiry `json:"inquiries"`
}

// List handles GET /api/admin/inquiries.
// Supports query params: status (all/unread/read), limit, offset.
func (h *InquiryHandler) List(w http.ResponseWriter, r *http.Request) {
	opts := model.InquiryListOptions{
		Status: r.URL.Query().Get("status"),
		Limit:  20,
		Offset: 0,
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 100 {
			opts.Limit = n
		}
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if n, err := strconv.Atoi(o); err == nil && n >= 0 {
			opts.Offset = n
		}
	}

	inquiries, err := h.inquiryService.List(r.Context(), opts)
	if err != nil {
		respondInternal(w, "list inquiries", err)
		return
	}
	if inquiries == nil {
		inquiries = []*model.Inquiry{}
	}
	respondJSON(w, http.StatusOK, inquiryListResponse{Inquiries: inquiries})
}

// flagsRequest is the expected body for PATCH /api/admin/inquiries/{id}.
// Omitted fields keep their current value; only the two admin booleans
// are mutable.
type flagsRequest struct {
	Read    *bool `json:"read"`
	Replied *bool `json:"replied"`
}

// UpdateFlags handles PATCH /api/admin/inquiries/{id}.
func (h *InquiryHandler) UpdateFlags(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	existing, err := h.inquiryService.Get(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		respondNotFound(w)
		return
	}
	if err != nil {
		respondInternal(w, "get inquiry", err)
		return
	}

	var req flagsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid JSON body")
		return
	}
	if req.Read == nil && req.Replied == nil {
		respondBadRequest(w, "at least one of read/replied is required")
		return
	}

	read := existing.Read
	replied := existing.Replied
	if req.Read != nil {
		read = *req.Read
	}
	if req.Replied != nil {
		replied = *req.Replied
	}

	if err := h.inquiryService.UpdateFlags(r.Context(), id, read, replied); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondNotFound(w)
			return
		}
		respondInternal(w, "update inquiry flags", err)
		return
	}

	existing.Read = read
	existing.Replied = replied
	respondJSON(w, http.StatusOK, map[string]*model.Inquiry{"inquiry": existing})
}

// Delete handles DELETE /api/admin/inquiries/{id}.
func (h *InquiryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.inquiryService.Delete(r.Context(), r.PathValue("id"))
	if errors.Is(err, repository.ErrNotFound) {
		respondNotFound(w)
		return
	}
	if err != nil {
		respondInternal(w, "delete inquiry", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
