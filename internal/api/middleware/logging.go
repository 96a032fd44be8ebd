package middleware

import (
	"time"

	"github.com/aistrugglebus/contact-api/internal/logging"
	"github.com/aistrugglebus/contact-api/internal/utils"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request through the global logger.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		logging.GetGlobalLogger().Info("%3d | %13v | %15s | %-7s %s",
			c.Writer.Status(),
			time.Since(start),
			utils.ClientIdentity(c.Request.Header),
			method,
			path,
		)
	}
}
