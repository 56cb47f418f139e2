package catalog

import "github.com/gin-gonic/gin"

func SetupCatalogRoutes(rg *gin.RouterGroup, controller *Controller) {
	venues := rg.Group("/venues")
	{
		venues.GET("", controller.ListVenues)   // GET /api/v1/venues
		venues.GET("/:id", controller.GetVenue) // GET /api/v1/venues/:id
	}

	services := rg.Group("/services")
	{
		services.GET("", controller.ListServices)   // GET /api/v1/services
		services.GET("/:id", controller.GetService) // GET /api/v1/services/:id
	}
}
