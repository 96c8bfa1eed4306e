package middleware

import (
	"net/http"
	"sync"
	"time"

	"go-retail-pos/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// limiterRegistry menyimpan satu token bucket per key (IP atau user id).
// Entri lama dibersihkan secara berkala agar map tidak tumbuh terus.
type limiterRegistry struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	rps      rate.Limit
	burst    int
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newLimiterRegistry(rps float64, burst int) *limiterRegistry {
	r := &limiterRegistry{
		limiters: make(map[string]*limiterEntry),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
	go r.cleanup()
	return r
}

func (r *limiterRegistry) get(key string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.limiters[key]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(r.rps, r.burst)}
		r.limiters[key] = entry
	}
	entry.lastSeen = time.Now()
	return entry.limiter
}

func (r *limiterRegistry) cleanup() {
	for {
		time.Sleep(3 * time.Minute)

		r.mu.Lock()
		for key, entry := range r.limiters {
			if time.Since(entry.lastSeen) > 10*time.Minute {
				delete(r.limiters, key)
			}
		}
		r.mu.Unlock()
	}
}

// RateLimitByIP untuk endpoint publik (browsing produk dsb).
func RateLimitByIP(rps float64, burst int) gin.HandlerFunc {
	registry := newLimiterRegistry(rps, burst)

	return func(c *gin.Context) {
		if !registry.get(c.ClientIP()).Allow() {
			response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "Terlalu banyak request, coba lagi nanti", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RateLimitByUser untuk endpoint ber-auth; fallback ke IP kalau guest.
func RateLimitByUser(rps float64, burst int) gin.HandlerFunc {
	registry := newLimiterRegistry(rps, burst)

	return func(c *gin.Context) {
		key := c.GetString("user_id")
		if key == "" {
			key = c.ClientIP()
		}

		if !registry.get(key).Allow() {
			response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "Terlalu banyak request, coba lagi nanti", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
