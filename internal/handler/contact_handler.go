package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gauravmb/portfolio-backend/internal/model"
	"github.com/gauravmb/portfolio-backend/internal/service"
	"github.com/gauravmb/portfolio-backend/internal/validation"
)

// ContactHandler handles the public contact form submission.
type ContactHandler struct {
	inquiryService    service.InquiryService
	rateWindowSeconds int
	trustedProxyCount int
}

// NewContactHandler creates a ContactHandler. rateWindowSeconds feeds the
// Retry-After guidance on 429 responses.
func NewContactHandler(inquiryService service.InquiryService, rateWindowSeconds, trustedProxyCount int) *ContactHandler {
	return &ContactHandler{
		inquiryService:    inquiryService,
		rateWindowSeconds: rateWindowSeconds,
		trustedProxyCount: trustedProxyCount,
	}
}

// maxContactBody bounds the request body well above the largest valid
// form (message tops out at 5000 characters).
const maxContactBody = 64 << 10 // 64 KB

// submitRequest is the expected JSON body for POST /api/contact.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Submit handles POST /api/contact: validate, rate-check, store.
// All four fields are required; the message has length bounds.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxContactBody)

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid JSON body")
		return
	}

	if fieldErrs := validation.ContactForm(req.Name, req.Email, req.Subject, req.Message); len(fieldErrs) > 0 {
		respondValidation(w, fieldErrs)
		return
	}

	inq := &model.Inquiry{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		Origin:  ClientIP(r, h.trustedProxyCount),
	}

	err := h.inquiryService.Submit(r.Context(), inq)
	if errors.Is(err, service.ErrRateLimited) {
		w.Header().Set("Retry-After", strconv.Itoa(h.rateWindowSeconds))
		respondError(w, http.StatusTooManyRequests, CodeRateLimited,
			"too many submissions from this address, try again later", nil)
		return
	}
	if err != nil {
		respondInternal(w, "submit inquiry", err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]bool{"success": true})
}
