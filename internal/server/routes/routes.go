package routes

import (
	"io/fs"
	"net/http"

	"github.com/everydayventures/website/internal/api/dto/common"
	"github.com/everydayventures/website/internal/api/middleware"
	"github.com/everydayventures/website/internal/logging"
	"github.com/everydayventures/website/internal/utils"

	"github.com/gin-gonic/gin"
)

// Setup configures all route groups
func Setup(router *gin.Engine, h *Handlers, m *Middleware, site fs.FS) {
	SetupHealthRoutes(router, h.Health)

	api := router.Group("/api")
	SetupContactRoutes(api, h.Contact, m)

	SetupSiteRoutes(router, site)

	router.NoMethod(methodNotAllowed)

	logging.GetLogger().Info("All routes have been set up successfully")
}

// methodNotAllowed answers the contact endpoint with its CORS headers and a
// form specific message; every other route gets a plain 405
func methodNotAllowed(c *gin.Context) {
	if c.Request.URL.Path == "/api"+ContactPath {
		middleware.SetCORSHeaders(c)
		utils.Respond(c, http.StatusMethodNotAllowed,
			common.NewErrorResponse("This endpoint only accepts form submissions.", nil))
		return
	}

	utils.Respond(c, http.StatusMethodNotAllowed,
		common.NewErrorResponse("Method not allowed.", nil))
}

// SetupSiteRoutes serves the embedded marketing site
func SetupSiteRoutes(router *gin.Engine, site fs.FS) {
	files := http.FS(site)
	router.GET("/", func(c *gin.Context) {
		c.FileFromFS("/", files)
	})
	router.StaticFS("/assets", subFS(site, "assets"))
}

// SetupGlobalMiddleware configures middleware that applies to all routes
func SetupGlobalMiddleware(router *gin.Engine, logger *logging.Logger, production bool) {
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.SecurityHeaders(production))
}

func subFS(site fs.FS, dir string) http.FileSystem {
	sub, err := fs.Sub(site, dir)
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
