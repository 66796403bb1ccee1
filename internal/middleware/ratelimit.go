package middleware

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/journalup/journal-up/internal/config"
)

// RateLimit returns a fixed-window per-client limiter backed by Redis.
// Each client gets cfg.Limit requests per cfg.Window, keyed by user id
// when authenticated and by IP otherwise. When Redis is unavailable the
// limiter fails open; a broken cache must not take down the API.
func RateLimit(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := fmt.Sprintf("%s:%s", cfg.Prefix, clientKey(c))

			count, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				c.Logger().Warnf("ratelimit: redis incr failed for key=%s: %v", key, err)
				return next(c)
			}
			if count == 1 {
				// first hit opens the window
				if err := rdb.Expire(ctx, key, cfg.Window).Err(); err != nil {
					c.Logger().Warnf("ratelimit: redis expire failed for key=%s: %v", key, err)
				}
			}

			remaining := int64(cfg.Limit) - count
			if remaining < 0 {
				remaining = 0
			}
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if count > int64(cfg.Limit) {
				ttl, err := rdb.TTL(ctx, key).Result()
				if err == nil && ttl > 0 {
					c.Response().Header().Set("Retry-After", strconv.Itoa(int(ttl.Seconds())))
				}
				return c.JSON(http.StatusTooManyRequests, map[string]any{
					"error": map[string]string{
						"code":    "RATE_LIMITED",
						"message": "rate limit exceeded",
					},
				})
			}
			return next(c)
		}
	}
}

// clientKey identifies the caller: the authenticated user when known,
// otherwise the remote IP.
func clientKey(c echo.Context) string {
	if uid := UserID(c); uid != "" {
		return "user:" + uid
	}
	ip := c.RealIP()
	if ip == "" {
		ip = "unknown"
	}
	return "ip:" + ip
}
