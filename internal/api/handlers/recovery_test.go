package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	contactdto "github.com/aistrugglebus/contact-api/internal/api/dto/v1/contact"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoveryAnswersPanicWithGenericFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Recovery())
	router.POST("/api/contact", func(c *gin.Context) {
		panic("nil pointer dereference in a collaborator")
	})

	req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp contactdto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Failed to process contact form", resp.Error)
	// The panic value stays server-side
	assert.NotContains(t, w.Body.String(), "nil pointer")
}
