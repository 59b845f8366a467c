package middleware

import (
	"net/http"

	"github.com/everydayventures/website/internal/api/dto/common"
	"github.com/everydayventures/website/internal/utils"

	"github.com/gin-gonic/gin"
)

// DefaultMaxBodySize bounds form submissions when no limit is configured.
// It sits well above the largest valid encoded inquiry so length errors
// reach field validation.
const DefaultMaxBodySize int64 = 1 << 20

// LimitRequestBody caps the bytes a handler may read from the request body.
// Reads past the limit fail, which surfaces as a form parse error.
func LimitRequestBody(maxBodySize int64) gin.HandlerFunc {
	if maxBodySize <= 0 {
		maxBodySize = DefaultMaxBodySize
	}

	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBodySize {
			utils.HandleAPIError(c, nil, http.StatusRequestEntityTooLarge, common.ErrCodeBadRequest,
				"Your message is too large to send.", nil)
			c.Abort()
			return
		}

		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodySize)
		}

		c.Next()
	}
}
