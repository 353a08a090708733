package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// rateLimiter is a fixed-window per-key request counter. Windows are one
// minute; the count resets at the window boundary rather than sliding,
// which keeps the bookkeeping to one counter per active key.
type rateLimiter struct {
	mu      sync.Mutex
	windows map[string]*window
	now     func() time.Time
}

type window struct {
	start time.Time
	count int
}

func newRateLimiter() *rateLimiter {
	return &rateLimiter{
		windows: make(map[string]*window),
		now:     time.Now,
	}
}

// allow counts one request against key and reports whether it fits in the
// per-minute limit.
func (r *rateLimiter) allow(key string, limit int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	w, ok := r.windows[key]
	if !ok || now.Sub(w.start) >= time.Minute {
		r.windows[key] = &window{start: now, count: 1}
		r.sweep(now)
		return true
	}
	w.count++
	return w.count <= limit
}

// sweep drops stale windows so the map does not grow with dead keys.
// Called with the lock held, only on window rollover.
func (r *rateLimiter) sweep(now time.Time) {
	for key, w := range r.windows {
		if now.Sub(w.start) >= 2*time.Minute {
			delete(r.windows, key)
		}
	}
}

// rateLimit enforces a per-user fixed-window limit for one route group.
// Unauthenticated requests are keyed by client IP. Admins bypass limits.
func (s *Server) rateLimit(bucket string, limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limit <= 0 {
			c.Next()
			return
		}
		if c.GetString(ctxRole) == "admin" {
			c.Next()
			return
		}
		key := c.GetString(ctxUserID)
		if key == "" {
			key = c.ClientIP()
		}
		if !s.limiter.allow(bucket+":"+key, limit) {
			respondError(c, http.StatusTooManyRequests, CodeRateLimit, "rate limit exceeded, retry later")
			return
		}
		c.Next()
	}
}
