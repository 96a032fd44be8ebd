package routes

import (
	"github.com/aistrugglebus/contact-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// SetupContactRoutes configures contact form routes. The endpoint is public;
// its own fixed-window rate limit lives inside the handler so the limit
// headers can be computed from the same check.
func SetupContactRoutes(router *gin.RouterGroup, contact *handlers.ContactHandler) {
	router.POST("/contact", contact.Submit)
}
