package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/visualpath/visualpath-api/internal/config"
	"github.com/visualpath/visualpath-api/internal/persistence"
	apperrors "github.com/visualpath/visualpath-api/pkg/util"
)

// RateLimiter throttles public submission endpoints per client IP using a
// fixed window counter in Redis. When Redis is unavailable the limiter
// degrades open: submissions matter more than throttling.
func RateLimiter(cfg config.RateLimitConfig, redis *persistence.Redis, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !cfg.Enabled || redis == nil || redis.Client == nil {
			return c.Next()
		}

		ctx := c.UserContext()
		key := "ratelimit:" + c.IP() + ":" + c.Path()

		count, err := redis.Client.Incr(ctx, key).Result()
		if err != nil {
			logger.Warn("rate limiter unavailable", zap.Error(err))
			return c.Next()
		}
		if count == 1 {
			if err := redis.Client.Expire(ctx, key, cfg.Window()).Err(); err != nil {
				logger.Warn("rate limiter expire failed", zap.Error(err))
			}
		}
		if count > int64(cfg.MaxRequests) {
			c.Set("Retry-After", strconv.Itoa(cfg.WindowSeconds))
			return apperrors.NewRateLimited("too many submissions, try again later")
		}
		return c.Next()
	}
}
