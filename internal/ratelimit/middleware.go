package ratelimit

import (
	"fmt"
	"time"

	"intake-agent/internal/apierrors"
	"intake-agent/internal/observability"

	"github.com/gin-gonic/gin"
)

// Middleware limits requests per key returned by keyFn. Requests with an
// empty key are not limited.
func (s *Service) Middleware(keyFn func(c *gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := keyFn(c)
		if key == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		result := s.Check(ctx, key)

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetAt.Unix()))

		if !result.Allowed {
			retryAfter := result.ResetAt.Sub(s.now())
			if retryAfter < 0 {
				retryAfter = 0
			}
			c.Header("Retry-After", fmt.Sprintf("%d", int(retryAfter.Round(time.Second).Seconds())))

			ctx = observability.WithFields(ctx, observability.Field{Key: "rate_limit_key", Value: key})
			s.logger.Warn(ctx, "rate limit exceeded")
			apierrors.RespondWithError(c, apierrors.TooManyRequests("Rate limit exceeded"))
			return
		}

		c.Next()
	}
}
