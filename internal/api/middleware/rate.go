package middleware

import (
	"net/http"

	"github.com/aistrugglebus/contact-api/internal/api/dto/common"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitConfig defines the service-wide request budget. This guard
// protects the whole process from bursts; the contact endpoint additionally
// applies its own per-identity fixed window.
type RateLimitConfig struct {
	// Requests per second
	RPS int
	// Burst size
	Burst int
}

// RateLimitMiddleware rejects requests beyond the configured global rate.
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(config.RPS), config.Burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, common.NewErrorResponse(
				common.ErrCodeTooManyRequests, "Rate limit exceeded. Please try again later.", nil))
			return
		}
		c.Next()
	}
}
