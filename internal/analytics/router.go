package analytics

import "github.com/gin-gonic/gin"

// SetupAnalyticsRoutes registers the admin analytics endpoints
func SetupAnalyticsRoutes(rg *gin.RouterGroup, controller *Controller) {
	analytics := rg.Group("/analytics")
	{
		analytics.GET("/overview", controller.GetOverview)
		analytics.GET("/dashboard", controller.GetDashboard)
	}
}
