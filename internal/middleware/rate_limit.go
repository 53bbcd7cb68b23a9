package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/foodandtravelmag/mag-backend/internal/common"
	pkglogger "github.com/foodandtravelmag/mag-backend/pkg/logger"
)

// RateLimitConfig controls the sliding-window limiter.
type RateLimitConfig struct {
	RequestsPerMinute int
	KeyPrefix         string
	Message           string
}

func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerMinute: 120,
		KeyPrefix:         "api:ratelimit:",
		Message:           "too many requests, slow down",
	}
}

// Sliding window over a sorted set: prune entries older than the window,
// count what remains, and record the current request.
var rateLimitScript = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])

redis.call('ZREMRANGEBYSCORE', key, 0, now - window)
local count = redis.call('ZCARD', key)
if count >= limit then
    return 0
end
redis.call('ZADD', key, now, now .. '-' .. math.random(100000))
redis.call('EXPIRE', key, math.ceil(window / 1000))
return 1
`)

// RateLimit limits requests per client IP. A nil redis client disables the
// limiter entirely (local development without redis).
func RateLimit(client *redis.Client, cfg RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil {
			c.Next()
			return
		}

		key := cfg.KeyPrefix + c.ClientIP()
		now := time.Now().UnixMilli()
		window := int64(time.Minute / time.Millisecond)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 200*time.Millisecond)
		defer cancel()

		allowed, err := rateLimitScript.Run(ctx, client, []string{key},
			now, window, cfg.RequestsPerMinute).Int()
		if err != nil {
			// Fail open: a broken limiter should not take the site down.
			pkglogger.GetLogger().Warn().Err(err).Msg("rate limiter unavailable")
			c.Next()
			return
		}

		if allowed == 0 {
			c.Header("Retry-After", "60")
			common.ErrorResponse(c, http.StatusTooManyRequests,
				fmt.Sprintf("%s (limit %d/min)", cfg.Message, cfg.RequestsPerMinute), nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
