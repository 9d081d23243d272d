package middleware

import (
	"github.com/gin-gonic/gin"

	apperrors "propcalc/internal/errors"
	"propcalc/internal/logger"
	"propcalc/internal/ratelimit"
)

// RateLimit returns a Gin middleware that throttles requests per client IP.
// Limiter errors fail open.
func RateLimit(limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			logger.Get().Warnw("rate limiter unavailable, allowing request",
				"error", err,
				"client_ip", c.ClientIP(),
				"request_id", RequestID(c),
			)
			c.Next()
			return
		}
		if !allowed {
			_ = c.Error(apperrors.ErrRateLimited)
			c.Abort()
			return
		}
		c.Next()
	}
}
