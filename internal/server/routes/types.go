package routes

import (
	"github.com/aistrugglebus/contact-api/internal/api/handlers"
)

// Handlers contains all the route handlers
type Handlers struct {
	Contact *handlers.ContactHandler
	Health  *handlers.HealthHandler
}
