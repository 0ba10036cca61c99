package middleware

import (
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/property-locator/internal/domain/repository"
	"github.com/property-locator/internal/pkg/errors"
	"github.com/property-locator/internal/pkg/utils"
)

// RateLimit - ограничение частоты запросов по IP клиента.
// Лишние запросы сразу отклоняются с 429 и Retry-After, в очередь не ставятся.
// Сбой хранилища лимитера не блокирует запрос.
func RateLimit(limiter repository.RateLimiter, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.IP()

		allowed, retryAfter, err := limiter.Allow(c.Context(), key)
		if err != nil {
			logger.Error("Rate limiter unavailable, allowing request",
				zap.String("ip", key),
				zap.Error(err))
			return c.Next()
		}

		if !allowed {
			seconds := int(math.Ceil(retryAfter.Seconds()))
			if seconds < 1 {
				seconds = 1
			}
			logger.Info("Request rate limited",
				zap.String("ip", key),
				zap.Int("retry_after_seconds", seconds))

			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(seconds))
			return utils.SendError(c, errors.ErrRateLimited.WithDetails(map[string]interface{}{
				"retry_after_seconds": seconds,
			}))
		}

		return c.Next()
	}
}
