package routes

import (
	"github.com/everydayventures/website/internal/api/handlers"
)

// Handlers contains all the route handlers
type Handlers struct {
	Health  *handlers.HealthHandler
	Contact *handlers.ContactHandler
}

// Middleware contains per-route middleware settings
type Middleware struct {
	MaxBodyBytes int64
}
