package auth

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hivebudget/backend/pkg/httperrors"
	"github.com/hivebudget/backend/pkg/models"
)

// Limiter is a fixed window rate limiter. The counters live in memory
// and are not shared between instances.
type Limiter struct {
	mu        sync.Mutex
	limit     int
	window    time.Duration
	windows   map[string]*window
	lastSweep time.Time
	now       func() time.Time
}

type window struct {
	start time.Time
	count int
}

// NewLimiter returns a Limiter allowing limit requests per key and window.
// A limit of 0 disables limiting.
func NewLimiter(limit int, length time.Duration) *Limiter {
	return &Limiter{
		limit:   limit,
		window:  length,
		windows: make(map[string]*window),
		now:     time.Now,
	}
}

// Allow counts a request for the key. If the limit is exceeded, it returns
// false and the time until the window resets.
func (l *Limiter) Allow(key string) (bool, time.Duration) {
	if l.limit <= 0 {
		return true, 0
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	w, ok := l.windows[key]
	if !ok || now.Sub(w.start) >= l.window {
		w = &window{start: now}
		l.windows[key] = w
	}

	if w.count >= l.limit {
		return false, w.start.Add(l.window).Sub(now)
	}

	w.count++
	return true, 0
}

// sweep removes expired windows, at most once per window length.
func (l *Limiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.window {
		return
	}

	for key, w := range l.windows {
		if now.Sub(w.start) >= l.window {
			delete(l.windows, key)
		}
	}
	l.lastSweep = now
}

// Middleware rejects requests exceeding the limit with 429 Too Many Requests.
func (l *Limiter) Middleware(key func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, retryAfter := l.Allow(key(c))
		if !ok {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, httperrors.HTTPError{
				Error: "too many requests, please try again later",
			})
			return
		}

		c.Next()
	}
}

// UserKey limits authenticated requests per user and all others per client IP.
func UserKey(c *gin.Context) string {
	if user, ok := c.Get(userKey); ok {
		if u, ok := user.(models.User); ok {
			return "user:" + u.ID.String()
		}
	}

	return "ip:" + c.ClientIP()
}
