package middleware

import (
	"math"
	"net/http"

	"github.com/labstack/echo/v4"

	"skillio/internal/infrastructure/ratelimit"
	"skillio/pkg/logger"
)

// RateLimit throttles per caller: the authenticated uid when present, the client IP otherwise.
func RateLimit(rl *ratelimit.RateLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.RealIP()
			if uid, ok := c.Get("uid").(string); ok && uid != "" {
				key = "uid:" + uid
			}

			if allowed, retryAfter := rl.Allow(key); !allowed {
				logger.Warn("RATE LIMIT: blocked request from %s (retry in %v)", key, retryAfter)
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"error":       "Rate limit exceeded",
					"retry_after": int(math.Ceil(retryAfter.Seconds())),
				})
			}

			return next(c)
		}
	}
}
