package reservations

// SetVenueAndTimeRequest carries the step-1 form fields
type SetVenueAndTimeRequest struct {
	VenueID       string `json:"venue_id" binding:"required,uuid"`
	Date          string `json:"date" binding:"required"` // YYYY-MM-DD
	StartTime     string `json:"start_time" binding:"required"`
	DurationHours int    `json:"duration_hours" binding:"required,min=1"`
	Attendees     int    `json:"attendees" binding:"required,min=1"`
}

// ToggleServiceRequest selects or deselects one add-on
type ToggleServiceRequest struct {
	ServiceID string `json:"service_id" binding:"required,uuid"`
	Selected  bool   `json:"selected"`
}

// ContactInfoRequest carries the review-step contact fields. Field-level
// validation happens in the draft, not here, so the form gets the same
// messages regardless of transport.
type ContactInfoRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	SpecialRequests string `json:"special_requests"`
}

// UpdateStatusRequest carries an approval-workflow transition
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// DraftResponse reports a draft's id and current step
type DraftResponse struct {
	DraftID string `json:"draft_id"`
	State   string `json:"state"`
}
