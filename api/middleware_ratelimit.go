package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/Elisbrown/Restaurant-POS-sub001/token"
)

// RateLimiterConfig holds the per-IP and per-user rate limits
type RateLimiterConfig struct {
	IPRateLimit  rate.Limit
	IPBurstLimit int

	UserRateLimit  rate.Limit
	UserBurstLimit int

	CleanupInterval time.Duration
}

// DefaultRateLimiterConfig returns limits sized for a single restaurant's
// front of house traffic
func DefaultRateLimiterConfig() RateLimiterConfig {
	return RateLimiterConfig{
		IPRateLimit:     10,
		IPBurstLimit:    20,
		UserRateLimit:   20,
		UserBurstLimit:  50,
		CleanupInterval: 10 * time.Minute,
	}
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter tracks one token bucket per client
type RateLimiter struct {
	config   RateLimiterConfig
	visitors map[string]*visitor
	mu       sync.Mutex
	stopCh   chan struct{}
}

func NewRateLimiter(config RateLimiterConfig) *RateLimiter {
	rl := &RateLimiter{
		config:   config,
		visitors: make(map[string]*visitor),
		stopCh:   make(chan struct{}),
	}

	go rl.cleanupVisitors()
	return rl
}

func (rl *RateLimiter) getVisitor(key string, rateLimit rate.Limit, burst int) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[key]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(rateLimit, burst)}
		rl.visitors[key] = v
	}
	v.lastSeen = time.Now()
	return v.limiter
}

func (rl *RateLimiter) cleanupVisitors() {
	ticker := time.NewTicker(rl.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.mu.Lock()
			for key, v := range rl.visitors {
				if time.Since(v.lastSeen) > rl.config.CleanupInterval {
					delete(rl.visitors, key)
				}
			}
			rl.mu.Unlock()
		case <-rl.stopCh:
			return
		}
	}
}

// Stop terminates the background cleanup goroutine
func (rl *RateLimiter) Stop() {
	close(rl.stopCh)
}

// IPMiddleware limits all traffic per client IP. It runs before
// authentication, so it is the only limiter login and refresh see.
func (rl *RateLimiter) IPMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		limiter := rl.getVisitor("ip:"+ctx.ClientIP(), rl.config.IPRateLimit, rl.config.IPBurstLimit)
		if !limiter.Allow() {
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}

		ctx.Next()
	}
}

// UserMiddleware limits authenticated traffic per user. It must run after
// the auth middleware so the token payload is set; a request without one
// falls back to the IP bucket.
func (rl *RateLimiter) UserMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var limiter *rate.Limiter
		if payload, exists := ctx.Get(authorizationPayloadKey); exists {
			authPayload := payload.(*token.Payload)
			limiter = rl.getVisitor("user:"+authPayload.Username, rl.config.UserRateLimit, rl.config.UserBurstLimit)
		} else {
			limiter = rl.getVisitor("ip:"+ctx.ClientIP(), rl.config.IPRateLimit, rl.config.IPBurstLimit)
		}

		if !limiter.Allow() {
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}

		ctx.Next()
	}
}

// SensitiveAPIMiddleware applies a stricter per-minute cap for endpoints
// like login that invite brute forcing
func (rl *RateLimiter) SensitiveAPIMiddleware(perMinute int) gin.HandlerFunc {
	limit := rate.Every(time.Minute / time.Duration(perMinute))
	return func(ctx *gin.Context) {
		limiter := rl.getVisitor("sensitive:"+ctx.ClientIP(), limit, perMinute)
		if !limiter.Allow() {
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		ctx.Next()
	}
}
