package routes

import (
	"github.com/aistrugglebus/contact-api/internal/logging"

	"github.com/gin-gonic/gin"
)

// Setup configures all route groups
func Setup(router *gin.Engine, h *Handlers) {
	router.GET("/health", h.Health.Check)

	api := router.Group("/api")
	SetupContactRoutes(api, h.Contact)

	logging.GetGlobalLogger().Info("All routes have been set up successfully")
}
