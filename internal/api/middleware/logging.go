package middleware

import (
	"time"

	"github.com/everydayventures/website/internal/api/constants"
	"github.com/everydayventures/website/internal/logging"
	"github.com/everydayventures/website/internal/utils"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request when request logging is enabled
func RequestLogger(logger *logging.Logger) gin.HandlerFunc {
	logger.Debug("RequestLogger middleware initialized (enabled=%v)", logger.RequestsEnabled())

	// If logging is disabled, return a no-op middleware
	if !logger.RequestsEnabled() {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		logger.LogHTTPRequest(
			c.GetString(constants.ContextKeyRequestID),
			method,
			path,
			utils.GetRealIP(c),
			c.Writer.Status(),
			c.Writer.Size(),
			time.Since(start).String(),
		)
	}
}
