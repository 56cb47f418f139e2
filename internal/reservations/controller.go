package reservations

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"venuehub/internal/catalog"
	"venuehub/internal/drafts"
	"venuehub/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	engine *Engine
	drafts *drafts.Manager
}

func NewController(engine *Engine, draftManager *drafts.Manager) *Controller {
	return &Controller{engine: engine, drafts: draftManager}
}

// StartDraft opens a new booking draft on the venue/time step
func (c *Controller) StartDraft(ctx *gin.Context) {
	draft := c.drafts.StartDraft()
	response.RespondJSON(ctx, "success", http.StatusCreated, "Draft started", DraftResponse{
		DraftID: draft.ID().String(),
		State:   string(draft.State()),
	}, nil)
}

// SetVenueAndTime records the step-1 selections on a draft
func (c *Controller) SetVenueAndTime(ctx *gin.Context) {
	draftID, ok := parseID(ctx, "id", "Invalid draft ID")
	if !ok {
		return
	}

	var req SetVenueAndTimeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	venueID, err := uuid.Parse(req.VenueID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid venue ID", nil, err.Error())
		return
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD", nil, err.Error())
		return
	}

	if err := c.drafts.SetVenueAndTime(ctx.Request.Context(), draftID, venueID, date, req.StartTime, req.DurationHours, req.Attendees); err != nil {
		respondDomainError(ctx, err, "Failed to set venue and time")
		return
	}

	c.respondSummary(ctx, draftID, "Venue and time recorded")
}

// ToggleService selects or deselects an add-on on the services step
func (c *Controller) ToggleService(ctx *gin.Context) {
	draftID, ok := parseID(ctx, "id", "Invalid draft ID")
	if !ok {
		return
	}

	var req ToggleServiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}
	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid service ID", nil, err.Error())
		return
	}

	if err := c.drafts.ToggleService(ctx.Request.Context(), draftID, serviceID, req.Selected); err != nil {
		respondDomainError(ctx, err, "Failed to update service selection")
		return
	}

	c.respondSummary(ctx, draftID, "Service selection updated")
}

// SetContactInfo records the review-step contact fields
func (c *Controller) SetContactInfo(ctx *gin.Context) {
	draftID, ok := parseID(ctx, "id", "Invalid draft ID")
	if !ok {
		return
	}

	var req ContactInfoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	info := drafts.ContactInfo{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		SpecialRequests: req.SpecialRequests,
	}
	if err := c.drafts.SetContactInfo(draftID, info); err != nil {
		respondDomainError(ctx, err, "Failed to set contact info")
		return
	}

	c.respondSummary(ctx, draftID, "Contact info recorded")
}

// Advance moves a draft to the next step
func (c *Controller) Advance(ctx *gin.Context) {
	c.transition(ctx, c.drafts.Advance, "Draft advanced")
}

// Back moves a draft to the previous step
func (c *Controller) Back(ctx *gin.Context) {
	c.transition(ctx, c.drafts.Back, "Draft moved back")
}

func (c *Controller) transition(ctx *gin.Context, step func(uuid.UUID) (drafts.State, error), message string) {
	draftID, ok := parseID(ctx, "id", "Invalid draft ID")
	if !ok {
		return
	}

	state, err := step(draftID)
	if err != nil {
		respondDomainError(ctx, err, "Transition rejected")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, message, DraftResponse{
		DraftID: draftID.String(),
		State:   string(state),
	}, nil)
}

// GetSummary returns the live cost breakdown for a draft
func (c *Controller) GetSummary(ctx *gin.Context) {
	draftID, ok := parseID(ctx, "id", "Invalid draft ID")
	if !ok {
		return
	}
	c.respondSummary(ctx, draftID, "Summary retrieved successfully")
}

func (c *Controller) respondSummary(ctx *gin.Context, draftID uuid.UUID, message string) {
	summary, err := c.engine.GetSummary(draftID)
	if err != nil {
		respondDomainError(ctx, err, "Failed to build summary")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, message, summary, nil)
}

// Commit finalizes a draft into a reservation
func (c *Controller) Commit(ctx *gin.Context) {
	draftID, ok := parseID(ctx, "id", "Invalid draft ID")
	if !ok {
		return
	}

	reservation, err := c.engine.Commit(ctx.Request.Context(), draftID)
	if err != nil {
		respondDomainError(ctx, err, "Failed to commit draft")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Reservation created successfully", reservation, nil)
}

// AbandonDraft discards a draft without effect
func (c *Controller) AbandonDraft(ctx *gin.Context) {
	draftID, ok := parseID(ctx, "id", "Invalid draft ID")
	if !ok {
		return
	}

	if err := c.drafts.Abandon(draftID); err != nil {
		respondDomainError(ctx, err, "Failed to abandon draft")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Draft abandoned", nil, nil)
}

// GetReservation returns a single reservation
func (c *Controller) GetReservation(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", "Invalid reservation ID")
	if !ok {
		return
	}

	reservation, err := c.engine.Get(ctx.Request.Context(), id)
	if err != nil {
		respondDomainError(ctx, err, "Failed to get reservation")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Reservation retrieved successfully", reservation, nil)
}

// CancelReservation cancels an active reservation and frees its slot
func (c *Controller) CancelReservation(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", "Invalid reservation ID")
	if !ok {
		return
	}

	if err := c.engine.Cancel(ctx.Request.Context(), id); err != nil {
		respondDomainError(ctx, err, "Failed to cancel reservation")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Reservation cancelled successfully", nil, nil)
}

// DayAvailability lists every start slot on a venue's day with its availability
func (c *Controller) DayAvailability(ctx *gin.Context) {
	venueID, ok := parseID(ctx, "id", "Invalid venue ID")
	if !ok {
		return
	}

	date, err := time.Parse("2006-01-02", ctx.Query("date"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD", nil, err.Error())
		return
	}

	duration := 1
	if raw := ctx.Query("duration"); raw != "" {
		duration, err = strconv.Atoi(raw)
		if err != nil || duration < 1 {
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid duration", nil, "duration must be a positive integer")
			return
		}
	}

	slots, err := c.engine.DayAvailability(ctx.Request.Context(), venueID, date, duration)
	if err != nil {
		respondDomainError(ctx, err, "Failed to check availability")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Availability retrieved successfully", gin.H{
		"venue_id": venueID.String(),
		"date":     date.Format("2006-01-02"),
		"duration": duration,
		"slots":    slots,
	}, nil)
}

// ListByVenueAndDate returns a venue's reservations for a day (admin)
func (c *Controller) ListByVenueAndDate(ctx *gin.Context) {
	venueID, err := uuid.Parse(ctx.Query("venue_id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid venue ID", nil, err.Error())
		return
	}
	date, err := time.Parse("2006-01-02", ctx.Query("date"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD", nil, err.Error())
		return
	}

	reservations, err := c.engine.ListByVenueAndDate(ctx.Request.Context(), venueID, date)
	if err != nil {
		respondDomainError(ctx, err, "Failed to list reservations")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Reservations retrieved successfully", reservations, nil)
}

// UpdateStatus applies an approval-workflow transition (admin)
func (c *Controller) UpdateStatus(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", "Invalid reservation ID")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}
	status, err := ParseStatus(req.Status)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid status", nil, err.Error())
		return
	}

	reservation, err := c.engine.UpdateStatus(ctx.Request.Context(), id, status)
	if err != nil {
		respondDomainError(ctx, err, "Failed to update status")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Status updated successfully", reservation, nil)
}

func parseID(ctx *gin.Context, param, message string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(param))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, message, nil, err.Error())
		return uuid.Nil, false
	}
	return id, true
}

// respondDomainError maps domain errors onto HTTP statuses
func respondDomainError(ctx *gin.Context, err error, message string) {
	var ve *drafts.ValidationError
	var pe *PersistenceError

	statusCode := http.StatusInternalServerError
	switch {
	case errors.As(err, &ve):
		statusCode = http.StatusUnprocessableEntity
	case errors.Is(err, ErrNotFound),
		errors.Is(err, drafts.ErrDraftNotFound),
		errors.Is(err, catalog.ErrVenueNotFound),
		errors.Is(err, catalog.ErrServiceNotFound):
		statusCode = http.StatusNotFound
	case errors.Is(err, ErrSlotUnavailable),
		errors.Is(err, ErrInvalidStatus),
		errors.Is(err, drafts.ErrInvalidTransition):
		statusCode = http.StatusConflict
	case errors.As(err, &pe):
		statusCode = http.StatusInternalServerError
	}

	response.RespondJSON(ctx, "error", statusCode, message, nil, err.Error())
}
