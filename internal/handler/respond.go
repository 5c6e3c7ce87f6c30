package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// Machine-readable error codes, one per row of the status mapping.
const (
	CodeValidation       = "VALIDATION_ERROR"
	CodeAuth             = "AUTH_ERROR"
	CodeNotFound         = "NOT_FOUND"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeRateLimited      = "RATE_LIMITED"
	CodeInternal         = "INTERNAL_ERROR"
	CodeUnavailable      = "UNAVAILABLE"
)

// errorBody is the uniform error envelope. Every error response from
// every route uses this shape; no route returns a bare or non-JSON error.
type errorBody struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	Timestamp string `json:"timestamp"`
	Details   any    `json:"details,omitempty"`
}

// respondJSON writes v as a JSON response with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

// respondError writes the uniform error envelope.
func respondError(w http.ResponseWriter, status int, code, msg string, details any) {
	respondJSON(w, status, errorBody{
		Error:     msg,
		Code:      code,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Details:   details,
	})
}

func respondValidation(w http.ResponseWriter, fields map[string]string) {
	respondError(w, http.StatusBadRequest, CodeValidation, "invalid request", fields)
}

func respondBadRequest(w http.ResponseWriter, msg string) {
	respondError(w, http.StatusBadRequest, CodeValidation, msg, nil)
}

// respondUnauthorized is deliberately generic: missing, malformed and
// expired credentials must be indistinguishable to the caller.
func respondUnauthorized(w http.ResponseWriter) {
	respondError(w, http.StatusUnauthorized, CodeAuth, "unauthorized", nil)
}

func respondNotFound(w http.ResponseWriter) {
	respondError(w, http.StatusNotFound, CodeNotFound, "not found", nil)
}

// respondInternal logs the real error with full detail and surfaces only
// a generic message to the caller.
func respondInternal(w http.ResponseWriter, op string, err error) {
	slog.Error("unexpected failure", "op", op, "error", err)
	respondError(w, http.StatusInternalServerError, CodeInternal, "internal error", nil)
}

// MethodNotAllowed writes the JSON 405 envelope. Routes register it as a
// method-less fallback pattern so unmatched methods on a known path still
// answer in the uniform shape instead of ServeMux's bare-text 405.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusMethodNotAllowed, CodeMethodNotAllowed, "method not allowed", nil)
}
