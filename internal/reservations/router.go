package reservations

import "github.com/gin-gonic/gin"

// SetupBookingRoutes registers the draft flow and reservation endpoints
func SetupBookingRoutes(rg *gin.RouterGroup, controller *Controller) {
	drafts := rg.Group("/drafts")
	{
		drafts.POST("", controller.StartDraft)
		drafts.GET("/:id/summary", controller.GetSummary)
		drafts.PUT("/:id/venue-time", controller.SetVenueAndTime)
		drafts.PUT("/:id/services", controller.ToggleService)
		drafts.PUT("/:id/contact", controller.SetContactInfo)
		drafts.POST("/:id/next", controller.Advance)
		drafts.POST("/:id/back", controller.Back)
		drafts.POST("/:id/commit", controller.Commit)
		drafts.DELETE("/:id", controller.AbandonDraft)
	}

	reservations := rg.Group("/reservations")
	{
		reservations.GET("/:id", controller.GetReservation)
		reservations.DELETE("/:id", controller.CancelReservation)
	}

	// Slot availability hangs off the venue resource
	rg.GET("/venues/:id/availability", controller.DayAvailability) // ?date=YYYY-MM-DD&duration=N
}

// SetupAdminReservationRoutes registers the approval-workflow endpoints
func SetupAdminReservationRoutes(rg *gin.RouterGroup, controller *Controller) {
	admin := rg.Group("/reservations")
	{
		admin.GET("", controller.ListByVenueAndDate) // ?venue_id=&date=
		admin.PATCH("/:id/status", controller.UpdateStatus)
	}
}
