package analytics

import (
	"net/http"

	"venuehub/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// GetOverview returns the headline reservation metrics
func (c *Controller) GetOverview(ctx *gin.Context) {
	overview, err := c.service.GetOverview(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get analytics overview", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Analytics overview retrieved successfully", overview, nil)
}

// GetDashboard returns the full admin dashboard payload
func (c *Controller) GetDashboard(ctx *gin.Context) {
	dashboard, err := c.service.GetDashboard(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get analytics dashboard", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Analytics dashboard retrieved successfully", dashboard, nil)
}
