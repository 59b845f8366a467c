package routes

import (
	"github.com/everydayventures/website/internal/api/handlers"
	"github.com/everydayventures/website/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// ContactPath is the public form endpoint
const ContactPath = "/contact"

// SetupContactRoutes configures contact form routes
func SetupContactRoutes(router *gin.RouterGroup, contact *handlers.ContactHandler, m *Middleware) {
	public := router.Group(ContactPath, middleware.CORS())
	{
		public.POST("", middleware.LimitRequestBody(m.MaxBodyBytes), contact.Submit)
		public.OPTIONS("", contact.Preflight)
	}
}
