package handler

import "net/http"

type healthResponse struct {
	Status string `json:"status"`
}

// Health handles GET /api/health with a store liveness check.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		respondError(w, http.StatusServiceUnavailable, CodeUnavailable, "store unavailable", nil)
		return
	}
	respondJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
