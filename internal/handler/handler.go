package handler

import (
	"net/http"
	"slices"

	"github.com/gauravmb/portfolio-backend/internal/repository"
)

// Handler carries the dependencies shared by the cross-cutting handlers
// (health, CORS).
type Handler struct {
	db             repository.DB
	allowedOrigins []string
}

// New creates a Handler. allowedOrigins is the allow-list for mutating
// cross-origin requests.
func New(db repository.DB, allowedOrigins []string) *Handler {
	return &Handler{db: db, allowedOrigins: allowedOrigins}
}

// CORS applies the split origin policy: GET/HEAD responses are world-
// readable, mutating requests only echo allow-listed origins. Preflight
// requests are answered here.
func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		switch r.Method {
		case http.MethodGet, http.MethodHead:
			w.Header().Set("Access-Control-Allow-Origin", "*")
		default:
			if origin != "" && slices.Contains(h.allowedOrigins, origin) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Vary", "Origin")
			}
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			if origin != "" && slices.Contains(h.allowedOrigins, origin) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Vary", "Origin")
			}
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
