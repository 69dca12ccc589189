package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/piresc/wheelshare/internal/pkg/constants"
	"github.com/piresc/wheelshare/internal/pkg/database"
	"github.com/piresc/wheelshare/internal/pkg/logger"
	"github.com/piresc/wheelshare/internal/pkg/models"
	"github.com/piresc/wheelshare/internal/utils"
)

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	Redis  *database.RedisClient
	Limit  int           // Maximum number of requests per window
	Period time.Duration // Window length
}

// NewRateLimiterConfig builds a limiter config from the service configuration
func NewRateLimiterConfig(redis *database.RedisClient, cfg models.RateLimitConfig) RateLimiterConfig {
	return RateLimiterConfig{
		Redis:  redis,
		Limit:  cfg.Limit,
		Period: time.Duration(cfg.PeriodSeconds) * time.Second,
	}
}

// RateLimiterMiddleware applies a fixed window limit per route and caller.
// Redis failures let the request through.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identifier := c.RealIP()
			if userID := c.Get(constants.CtxKeyUserID); userID != nil {
				identifier = fmt.Sprintf("%v", userID)
			}
			key := fmt.Sprintf(constants.KeyRateLimit, c.Path(), identifier)

			count, ttl, err := config.Redis.IncrWindow(c.Request().Context(), key, config.Period)
			if err != nil {
				logger.WarnCtx(c.Request().Context(), "Rate limiter unavailable",
					logger.String("key", key),
					logger.Err(err))
				return next(c)
			}

			remaining := int64(config.Limit) - count
			if remaining < 0 {
				remaining = 0
			}
			header := c.Response().Header()
			header.Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			header.Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
			header.Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(ttl).Unix(), 10))

			if count > int64(config.Limit) {
				header.Set("Retry-After", strconv.FormatInt(int64(ttl.Seconds()), 10))
				return utils.ErrorResponseHandler(c, http.StatusTooManyRequests, "Rate limit exceeded")
			}

			return next(c)
		}
	}
}
