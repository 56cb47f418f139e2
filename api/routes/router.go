package routes

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"venuehub/internal/analytics"
	"venuehub/internal/availability"
	"venuehub/internal/catalog"
	"venuehub/internal/drafts"
	"venuehub/internal/reservations"
	"venuehub/internal/shared/config"
	"venuehub/internal/shared/database"
	"venuehub/pkg/cache"
	"venuehub/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config *config.Config
	db     *database.DB

	catalogReader catalog.Reader
	draftManager  *drafts.Manager
	engine        *reservations.Engine
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB) *Router {
	return &Router{
		config: cfg,
		db:     db,
	}
}

// SetupRoutes configures all application routes. The availability index is
// rebuilt from the store before any route can take traffic, so a non-nil
// error means the server must not start.
func (r *Router) SetupRoutes(engine *gin.Engine) error {
	r.setupHealthRoutes(engine)

	api := engine.Group(r.config.GetAPIBasePath())
	{
		// Catalog first: the booking flow resolves venues and services through it
		r.setupCatalogRoutes(api)

		if err := r.setupBookingRoutes(api); err != nil {
			return err
		}

		admin := api.Group("/admin")
		{
			r.setupAdminRoutes(admin)
		}
	}

	return nil
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "venuehub-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "venuehub-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

// setupCatalogRoutes configures the venue and service browsing routes
func (r *Router) setupCatalogRoutes(rg *gin.RouterGroup) {
	catalogRepo := catalog.NewRepository(r.db.GetPostgreSQL())

	if r.db.Redis != nil {
		cacheService := cache.NewService(r.db.GetRedisClient())
		r.catalogReader = catalog.NewCachedReader(catalogRepo, cacheService, r.config.Redis.CatalogCacheTTL)
	} else {
		r.catalogReader = catalog.NewReader(catalogRepo)
	}

	catalogController := catalog.NewController(r.catalogReader)
	catalog.SetupCatalogRoutes(rg, catalogController)
}

// setupBookingRoutes configures the draft flow and reservation routes
func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) error {
	store := reservations.NewGormStore(r.db.GetPostgreSQL())
	index := availability.NewIndex()
	r.draftManager = drafts.NewManager(r.catalogReader)
	r.engine = reservations.NewEngine(store, index, r.draftManager, r.catalogReader, logger.GetDefault())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := r.engine.WarmUp(ctx); err != nil {
		return fmt.Errorf("failed to rebuild availability index: %w", err)
	}

	bookingController := reservations.NewController(r.engine, r.draftManager)
	reservations.SetupBookingRoutes(rg, bookingController)
	return nil
}

// setupAdminRoutes configures the approval workflow and analytics routes
func (r *Router) setupAdminRoutes(rg *gin.RouterGroup) {
	bookingController := reservations.NewController(r.engine, r.draftManager)
	reservations.SetupAdminReservationRoutes(rg, bookingController)

	analyticsRepo := analytics.NewRepository(r.db.GetPostgreSQL())
	analyticsService := analytics.NewService(analyticsRepo)
	analyticsController := analytics.NewController(analyticsService)
	analytics.SetupAnalyticsRoutes(rg, analyticsController)
}
