package handler

import (
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gauravmb/portfolio-backend/pkg/auth"
	"golang.org/x/time/rate"
)

// SecurityHeaders adds security response headers (CSP, X-Frame-Options, etc.)
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("X-XSS-Protection", "0")
		h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
		h.Set("Content-Security-Policy", "default-src 'self'; script-src 'self'; frame-ancestors 'none'")
		h.Set("Strict-Transport-Security", "max-age=63072000; includeSubDomains")
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin gates admin routes behind a bearer token. Every failure
// mode — missing header, malformed token, bad signature, expiry — yields
// the identical 401 envelope; the cause is logged at DEBUG only. The
// resolved identity is placed in the request context, fresh per request.
func RequireAdmin(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := auth.ResolveIdentity(r.Header.Get("Authorization"), secret)
			if err != nil {
				slog.Debug("admin auth refused", "path", r.URL.Path, "reason", err)
				respondUnauthorized(w)
				return
			}

			ctx := auth.WithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClientIP extracts the real client address, reading from the rightmost
// trusted proxy position in X-Forwarded-For to prevent spoofing.
func ClientIP(r *http.Request, trustedProxyCount int) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" && trustedProxyCount > 0 {
		parts := strings.Split(xff, ",")
		// The rightmost entry added by our own infrastructure is at
		// index len(parts) - trustedProxyCount.
		idx := len(parts) - trustedProxyCount
		if idx >= 0 && idx < len(parts) {
			return strings.TrimSpace(parts[idx])
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RequestLimiter provides coarse per-IP request limiting for the whole
// API using a token bucket per client, with periodic cleanup of idle
// entries. This is a transport-level flood guard; the contact submission
// window is enforced separately, from the store.
type RequestLimiter struct {
	rps               rate.Limit
	burst             int
	trustedProxyCount int

	mu      sync.Mutex
	clients map[string]*clientEntry
}

type clientEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

const limiterIdleTTL = 15 * time.Minute

// NewRequestLimiter creates a limiter allowing rps sustained requests per
// client with the given burst.
func NewRequestLimiter(rps float64, burst, trustedProxyCount int) *RequestLimiter {
	rl := &RequestLimiter{
		rps:               rate.Limit(rps),
		burst:             burst,
		trustedProxyCount: trustedProxyCount,
		clients:           make(map[string]*clientEntry),
	}
	go rl.cleanupLoop()
	return rl
}

func (rl *RequestLimiter) limiterFor(ip string) *rate.Limiter {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	if ent, ok := rl.clients[ip]; ok {
		ent.lastSeen = now
		return ent.lim
	}
	lim := rate.NewLimiter(rl.rps, rl.burst)
	rl.clients[ip] = &clientEntry{lim: lim, lastSeen: now}
	return lim
}

// cleanupLoop periodically drops entries idle longer than the TTL.
func (rl *RequestLimiter) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		cutoff := time.Now().Add(-limiterIdleTTL)
		rl.mu.Lock()
		for ip, ent := range rl.clients {
			if ent.lastSeen.Before(cutoff) {
				delete(rl.clients, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// Middleware returns an http.Handler that enforces the per-IP limit.
func (rl *RequestLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := ClientIP(r, rl.trustedProxyCount)
		if !rl.limiterFor(ip).Allow() {
			w.Header().Set("Retry-After", "1")
			respondError(w, http.StatusTooManyRequests, CodeRateLimited,
				"too many requests", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}
