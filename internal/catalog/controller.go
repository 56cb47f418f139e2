package catalog

import (
	"errors"
	"net/http"

	"venuehub/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	reader Reader
}

func NewController(reader Reader) *Controller {
	return &Controller{reader: reader}
}

func (c *Controller) ListVenues(ctx *gin.Context) {
	venues, err := c.reader.ListVenues(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to list venues", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Venues retrieved successfully", venues, nil)
}

func (c *Controller) GetVenue(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid venue ID", nil, err.Error())
		return
	}

	venue, err := c.reader.GetVenue(ctx.Request.Context(), id)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrVenueNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to get venue", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Venue retrieved successfully", venue, nil)
}

func (c *Controller) ListServices(ctx *gin.Context) {
	services, err := c.reader.ListServices(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to list services", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Services retrieved successfully", services, nil)
}

func (c *Controller) GetService(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid service ID", nil, err.Error())
		return
	}

	service, err := c.reader.GetService(ctx.Request.Context(), id)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrServiceNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to get service", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Service retrieved successfully", service, nil)
}
