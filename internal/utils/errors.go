package utils

import (
	"github.com/everydayventures/website/internal/api/dto/common"
	"github.com/everydayventures/website/internal/logging"

	"github.com/gin-gonic/gin"
)

// HandleAPIError logs err against the request and answers with message and
// the optional per-field errors in the caller's preferred format
func HandleAPIError(c *gin.Context, err error, status int, code common.ErrorCode, message string, fields map[string]string) {
	if err != nil {
		logging.GetLogger().LogHTTPError(
			c.Request.Method,
			c.Request.URL.Path,
			GetRealIP(c),
			status,
			string(code)+": "+message,
			err,
		)
	}

	Respond(c, status, common.NewErrorResponse(message, fields))
}
