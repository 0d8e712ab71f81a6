package middleware

import (
	"net/http"
	"sync"
	"time"

	"revup/internal/apierror"

	"github.com/gin-gonic/gin"
)

// ── Login rate limiter ────────────────────────────────────────────────────────

// ipEntry tracks login attempts per IP within a fixed window.
type ipEntry struct {
	count     int
	windowEnd time.Time
}

// LoginLimiter caps login attempts per client IP. Expired entries are
// dropped on access, so no background goroutine is needed.
type LoginLimiter struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu      sync.Mutex
	entries map[string]*ipEntry
}

// NewLoginLimiter allows limit attempts per window per IP. limit <= 0 disables it.
func NewLoginLimiter(limit int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{
		limit:   limit,
		window:  window,
		now:     time.Now,
		entries: make(map[string]*ipEntry),
	}
}

// allow records one attempt from ip and reports whether it is within the limit.
func (l *LoginLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for k, e := range l.entries {
		if now.After(e.windowEnd) {
			delete(l.entries, k)
		}
	}

	entry, ok := l.entries[ip]
	if !ok {
		entry = &ipEntry{windowEnd: now.Add(l.window)}
		l.entries[ip] = entry
	}
	entry.count++
	return entry.count <= l.limit
}

func (l *LoginLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if l.limit <= 0 {
			c.Next()
			return
		}
		if !l.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Too many login attempts. Try again in a minute."))
			return
		}
		c.Next()
	}
}
