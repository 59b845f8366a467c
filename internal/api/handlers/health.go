package handlers

import (
	"net/http"

	"github.com/everydayventures/website/internal/api/dto/common"
	"github.com/everydayventures/website/internal/version"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, common.NewDataResponse("ok", version.GetBuildInfo()))
}
