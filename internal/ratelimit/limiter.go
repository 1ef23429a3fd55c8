package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/ZanzyTHEbar/team-gravity/internal/errors"
	"github.com/ZanzyTHEbar/team-gravity/internal/monitoring"
	"github.com/gin-gonic/gin"
)

// Config holds rate limiter configuration
type Config struct {
	IPLimitPerMin   int // IP-based rate limit per minute
	BurstMultiplier int // Burst capacity multiplier
}

// DefaultConfig returns default rate limiting configuration
func DefaultConfig() Config {
	return Config{
		IPLimitPerMin:   60,
		BurstMultiplier: 2,
	}
}

// RateLimiter provides per-IP token-bucket rate limiting. Buckets live in
// memory; each analysis run is self-contained, so there is no distributed
// state to coordinate.
type RateLimiter struct {
	config  Config
	metrics *monitoring.Metrics

	limiters map[string]*rate.Limiter
	mutex    sync.RWMutex
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(config Config, metrics *monitoring.Metrics) *RateLimiter {
	rl := &RateLimiter{
		config:   config,
		metrics:  metrics,
		limiters: make(map[string]*rate.Limiter),
	}

	// Periodically drop all buckets so idle IPs don't accumulate forever.
	go rl.cleanup()

	return rl
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mutex.Lock()
		rl.limiters = make(map[string]*rate.Limiter)
		rl.mutex.Unlock()
	}
}

// Allow reports whether the given IP may proceed.
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mutex.RLock()
	limiter, exists := rl.limiters[ip]
	rl.mutex.RUnlock()

	if !exists {
		rps := rate.Limit(float64(rl.config.IPLimitPerMin) / 60.0)
		burst := rl.config.IPLimitPerMin * rl.config.BurstMultiplier

		rl.mutex.Lock()
		if limiter, exists = rl.limiters[ip]; !exists {
			limiter = rate.NewLimiter(rps, burst)
			rl.limiters[ip] = limiter
		}
		rl.mutex.Unlock()
	}

	return limiter.Allow()
}

// Middleware creates a Gin middleware enforcing the IP limit.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			rl.metrics.IncrementRateLimitIPBlock()

			appErr := errors.NewRateLimitError()
			errors.LogError(c, appErr)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr)
			return
		}
		c.Next()
	}
}
