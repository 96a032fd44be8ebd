package handlers

import (
	"net/http"

	"github.com/aistrugglebus/contact-api/internal/api/dto/common"
	"github.com/aistrugglebus/contact-api/internal/logging"
	"github.com/aistrugglebus/contact-api/internal/repository"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	contacts repository.ContactRepository
}

func NewHealthHandler(contacts repository.ContactRepository) *HealthHandler {
	return &HealthHandler{contacts: contacts}
}

// Check verifies database reachability with a cheap query.
func (h *HealthHandler) Check(c *gin.Context) {
	if _, err := h.contacts.Count(c.Request.Context()); err != nil {
		logging.GetGlobalLogger().Error("Health check database error: %v", err)
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(
			common.ErrCodeInternalServer, "Database connection error", nil))
		return
	}

	c.JSON(http.StatusOK, common.NewMessageResponse("Health check OK"))
}
