package handlers

import (
	"net/http"

	"github.com/aistrugglebus/contact-api/internal/api/dto/v1/contact"
	"github.com/aistrugglebus/contact-api/internal/logging"

	"github.com/gin-gonic/gin"
)

// Recovery converts an unhandled panic into the same generic processing
// failure the handlers return, so a crash never leaks internals or an empty
// body to the client. The recovered value is logged server-side only.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logging.GetGlobalLogger().Error("Panic recovered while handling %s %s: %v",
			c.Request.Method, c.Request.URL.Path, recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, contact.ErrorResponse{
			Error: genericFailureMessage,
		})
	})
}
