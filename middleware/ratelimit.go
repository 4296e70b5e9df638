package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"healthcall/config"
	"healthcall/logger"
	"healthcall/types"
)

// limiterEntry wraps a rate limiter with its last access time
type limiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimiter limits webhook requests per client IP
type RateLimiter struct {
	limiters        map[string]*limiterEntry
	mu              sync.Mutex
	requestsPerSec  rate.Limit
	burst           int
	enabled         bool
	cleanupInterval time.Duration
	lastCleanup     time.Time
}

// NewRateLimiter creates a new rate limiter instance
func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	rl := &RateLimiter{
		limiters:        make(map[string]*limiterEntry),
		requestsPerSec:  rate.Limit(cfg.RequestsPerSec),
		burst:           cfg.Burst,
		enabled:         cfg.Enabled,
		cleanupInterval: cfg.CleanupInterval,
		lastCleanup:     time.Now(),
	}

	logger.Info("Rate limiter initialized | requests_per_sec=%.2f burst=%d enabled=%v cleanup_interval=%v",
		cfg.RequestsPerSec, cfg.Burst, cfg.Enabled, cfg.CleanupInterval)

	return rl
}

// GetLimiter retrieves or creates a rate limiter for the given identifier
func (rl *RateLimiter) GetLimiter(identifier string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	// Perform periodic cleanup to prevent memory leaks
	if rl.cleanupInterval > 0 && time.Since(rl.lastCleanup) > rl.cleanupInterval {
		rl.cleanup()
		rl.lastCleanup = time.Now()
	}

	entry, exists := rl.limiters[identifier]
	if !exists {
		entry = &limiterEntry{
			limiter: rate.NewLimiter(rl.requestsPerSec, rl.burst),
		}
		rl.limiters[identifier] = entry
	}
	entry.lastAccess = time.Now()

	return entry.limiter
}

// cleanup removes limiters idle for longer than cleanupInterval; caller holds the lock
func (rl *RateLimiter) cleanup() {
	now := time.Now()
	for key, entry := range rl.limiters {
		if now.Sub(entry.lastAccess) > rl.cleanupInterval {
			delete(rl.limiters, key)
		}
	}
}

// Allow checks if a request should be allowed for the given identifier
func (rl *RateLimiter) Allow(identifier string) bool {
	return rl.GetLimiter(identifier).Allow()
}

// Middleware returns the rate limiting middleware handler
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip rate limiting if disabled
		if !rl.enabled {
			c.Next()
			return
		}

		// Whitelist: /health endpoint doesn't require rate limiting
		if c.Request.URL.Path == "/health" {
			c.Next()
			return
		}

		identifier := c.ClientIP()
		if !rl.Allow(identifier) {
			rl.respondRateLimitExceeded(c, identifier)
			return
		}

		c.Next()
	}
}

// respondRateLimitExceeded sends a 429 with the dispatcher's error body
func (rl *RateLimiter) respondRateLimitExceeded(c *gin.Context, identifier string) {
	c.Header("Retry-After", "1")
	c.Header("X-RateLimit-Limit", fmt.Sprintf("%.0f", float64(rl.requestsPerSec)))

	logger.Warn("Rate limit exceeded | client_ip=%s path=%s method=%s", identifier, c.Request.URL.Path, c.Request.Method)

	c.AbortWithStatusJSON(http.StatusTooManyRequests, types.ErrorResponse{Error: "Rate limit exceeded"})
}
