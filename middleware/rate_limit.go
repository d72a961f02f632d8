package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// clientWindow tracks requests from one client IP
type clientWindow struct {
	count   int
	firstAt time.Time
}

// RateLimiter limits how often a client may hit an endpoint within a window.
// Used on the job-start endpoint: started jobs cannot be stopped, so the one
// mutating endpoint gets a guard against accidental request loops.
type RateLimiter struct {
	mu           sync.RWMutex
	clients      map[string]*clientWindow
	maxRequests  int
	windowPeriod time.Duration
}

// NewRateLimiter creates a rate limiter allowing maxRequests per windowPeriod
// per client IP
func NewRateLimiter(maxRequests int, windowPeriod time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clients:      make(map[string]*clientWindow),
		maxRequests:  maxRequests,
		windowPeriod: windowPeriod,
	}
	go rl.startCleanup()
	return rl
}

// Limit returns a gin middleware enforcing the limit
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !rl.allow(ip) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"message": "Too many requests, try again later",
			})
			return
		}
		c.Next()
	}
}

// allow records a request from the IP and reports whether it is within limits
func (rl *RateLimiter) allow(ip string) bool {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	window, exists := rl.clients[ip]
	if !exists || now.Sub(window.firstAt) > rl.windowPeriod {
		rl.clients[ip] = &clientWindow{count: 1, firstAt: now}
		return true
	}

	window.count++
	return window.count <= rl.maxRequests
}

// startCleanup periodically drops expired windows
func (rl *RateLimiter) startCleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	for range ticker.C {
		rl.cleanup()
	}
}

// cleanup removes entries whose window has passed
func (rl *RateLimiter) cleanup() {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for ip, window := range rl.clients {
		if now.Sub(window.firstAt) > rl.windowPeriod {
			delete(rl.clients, ip)
		}
	}
}
