package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/everydayventures/website/internal/api/dto/common"
	"github.com/everydayventures/website/internal/api/constants"
	"github.com/everydayventures/website/internal/logging"
	"github.com/everydayventures/website/internal/utils"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into a 500 answer in the caller's preferred format
func Recovery(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("[PANIC] %s %s | %s | %v\n%s",
					c.Request.Method,
					c.Request.URL.Path,
					c.GetString(constants.ContextKeyRequestID),
					err,
					debug.Stack(),
				)

				utils.HandleAPIError(c, nil, http.StatusInternalServerError, common.ErrCodeInternalServer,
					"Something went wrong on our side. Please try again later.", nil)
				c.Abort()
			}
		}()

		c.Next()
	}
}
