package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"jobdeck/internal/config"
	"jobdeck/internal/logging"
	"jobdeck/pkg/models"
	"jobdeck/pkg/utils"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// ownerLimiter tracks an in-memory token bucket for a single owner
type ownerLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter throttles requests per authenticated owner. Counting happens
// in Redis so limits hold across replicas; when Redis is unreachable the
// limiter falls back to local token buckets rather than failing requests.
type RateLimiter struct {
	config *config.Config
	redis  *utils.RedisClient
	logger logging.Logger

	mu       sync.Mutex
	limiters map[string]*ownerLimiter
}

// NewRateLimiter creates a per-owner rate limiter. redisClient may be nil,
// in which case only the local buckets are used.
func NewRateLimiter(cfg *config.Config, redisClient *utils.RedisClient) *RateLimiter {
	return &RateLimiter{
		config:   cfg,
		redis:    redisClient,
		logger:   logging.GetGlobalLogger(),
		limiters: make(map[string]*ownerLimiter),
	}
}

// Middleware returns the echo middleware enforcing the configured limit
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !rl.config.RateLimit.Enabled {
				return next(c)
			}

			ownerID := OwnerID(c)
			if ownerID == "" {
				return next(c)
			}

			if !rl.allow(c, ownerID) {
				requestID := RequestID(c)
				rl.logger.Warn("Rate limit exceeded", map[string]interface{}{
					"request_id": requestID,
					"owner_id":   ownerID,
				})
				return c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
					Error:     "rate_limit_exceeded",
					Message:   "Too many requests, slow down",
					RequestID: requestID,
					Timestamp: time.Now(),
				})
			}

			return next(c)
		}
	}
}

func (rl *RateLimiter) allow(c echo.Context, ownerID string) bool {
	if rl.redis != nil {
		key := fmt.Sprintf("ratelimit:owner:%s", ownerID)
		count, err := rl.redis.IncrementWindow(c.Request().Context(), key, time.Minute)
		if err == nil {
			return count <= int64(rl.config.RateLimit.PerMinute)
		}
		rl.logger.Debug("Redis rate counter unavailable, using local bucket", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return rl.localLimiter(ownerID).Allow()
}

func (rl *RateLimiter) localLimiter(ownerID string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if entry, ok := rl.limiters[ownerID]; ok {
		entry.lastSeen = time.Now()
		return entry.limiter
	}

	// Drop buckets idle for over an hour before adding a new one
	cutoff := time.Now().Add(-time.Hour)
	for id, entry := range rl.limiters {
		if entry.lastSeen.Before(cutoff) {
			delete(rl.limiters, id)
		}
	}

	rps := rate.Limit(float64(rl.config.RateLimit.PerMinute) / 60.0)
	entry := &ownerLimiter{
		limiter:  rate.NewLimiter(rps, rl.config.RateLimit.Burst),
		lastSeen: time.Now(),
	}
	rl.limiters[ownerID] = entry
	return entry.limiter
}
