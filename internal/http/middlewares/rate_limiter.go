package middleware

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"todo-api.com/todo-api/internal/ratelimit"
)

// RateLimiter rejects requests over the per-client budget with 429. When
// the limiter backend is unreachable the request is let through; dropping
// traffic because redis is down would be worse than briefly not limiting.
func RateLimiter(limiter ratelimit.Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			allowed, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Printf("rate limiter unavailable: %v", err)
				return next(c)
			}
			if !allowed {
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}
			return next(c)
		}
	}
}
