package utils

import (
	"net/http"
	"strings"

	"github.com/everydayventures/website/internal/api/dto/common"
	"github.com/everydayventures/website/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

// AcceptsJSON reports whether the caller declared it accepts a JSON answer
func AcceptsJSON(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "application/json")
}

// Respond writes body as JSON when the caller accepts it, otherwise as a
// standalone HTML page carrying the message
func Respond(c *gin.Context, status int, body common.MessageResponse) {
	if AcceptsJSON(c) {
		c.JSON(status, body)
		return
	}

	c.Render(status, render.HTML{
		Template: web.Templates,
		Name:     web.ResultTemplate,
		Data: web.ResultPage{
			Failed:  status >= http.StatusBadRequest,
			Message: body.Message,
		},
	})
}

// HandleMessage sends a success response with just a message
func HandleMessage(c *gin.Context, message string) {
	Respond(c, http.StatusOK, common.NewMessageResponse(message))
}

// HandleNoContent sends a success response with no content
func HandleNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
