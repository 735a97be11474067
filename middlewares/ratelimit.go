package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter is per-client admission control: one token bucket per client
// address with burst = perMinute and a matching continuous refill. A burst
// of perMinute+1 closely spaced requests always has its last request
// rejected; like a fixed one-minute window, the worst-case admission over
// an arbitrary rolling span approaches twice the quota. Each policy
// (default, create, ...) gets its own RateLimiter instance; the instance is
// passed into the route wiring rather than living in a package global.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientEntry

	limit rate.Limit
	burst int

	idleTTL time.Duration
}

type clientEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter(perMinute int) *RateLimiter {
	return &RateLimiter{
		clients: make(map[string]*clientEntry),
		limit:   rate.Every(time.Minute / time.Duration(perMinute)),
		burst:   perMinute,
		idleTTL: 15 * time.Minute,
	}
}

// Allow reports whether the given client may proceed. Bucket lookup and
// creation are serialized per limiter so concurrent requests from one
// client are counted consistently.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	ent, ok := rl.clients[key]
	if !ok {
		ent = &clientEntry{lim: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[key] = ent
	}
	ent.lastSeen = time.Now()
	rl.mu.Unlock()

	return ent.lim.Allow()
}

// Cleanup drops buckets idle longer than the TTL.
func (rl *RateLimiter) Cleanup() {
	cutoff := time.Now().Add(-rl.idleTTL)

	rl.mu.Lock()
	defer rl.mu.Unlock()
	for k, ent := range rl.clients {
		if ent.lastSeen.Before(cutoff) {
			delete(rl.clients, k)
		}
	}
}

// StartJanitor periodically evicts idle client buckets until done closes.
func (rl *RateLimiter) StartJanitor(done <-chan struct{}, every time.Duration) {
	t := time.NewTicker(every)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-t.C:
				rl.Cleanup()
			}
		}
	}()
}

// RateLimit rejects over-quota requests with 429 before the handler runs.
func RateLimit(rl *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}
