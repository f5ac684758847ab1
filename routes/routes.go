package routes

import (
	"net/http"
	"time"

	"washly/handlers"
	"washly/middleware"
	"washly/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle collects every handler the router needs.
type HandlerBundle struct {
	Wizard  *handlers.WizardHandler
	Catalog *handlers.CatalogHandler
	Washes  *handlers.WashesHandler
	Admin   *handlers.AdminHandler
}

// RegisterCatalogRoutes exposes the wash packages and availability grid.
func RegisterCatalogRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/services", hb.Catalog.ListServices)
		api.GET("/dates", hb.Catalog.ListDates)
		api.GET("/availability", hb.Catalog.GetAvailability)
	}
}

// RegisterWizardRoutes sets up the booking wizard session endpoints.
func RegisterWizardRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/wizard")
	{
		api.POST("/session", hb.Wizard.StartSession)
		api.GET("/session/:sessionID", hb.Wizard.GetSession)
		api.PATCH("/session/:sessionID", hb.Wizard.PatchSession)
		api.POST("/session/:sessionID/next", hb.Wizard.NextStep)
		api.POST("/session/:sessionID/back", hb.Wizard.PrevStep)
		api.POST("/session/:sessionID/submit", hb.Wizard.SubmitSession)
		api.DELETE("/session/:sessionID", hb.Wizard.CancelSession)
	}
}

// RegisterWashesRoutes covers the customer area and the washer portal.
func RegisterWashesRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/washes", hb.Washes.ListMyWashes)
		api.POST("/washes/:id/cancel", hb.Washes.CancelWash)
		api.GET("/washers/:id/day", hb.Washes.WasherDay)
	}
}

// RegisterAdminRoutes sets up endpoints for the operations dashboard.
func RegisterAdminRoutes(r *gin.Engine, hb *HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthAdminMiddleware())
		adminGroup.GET("/bookings", hb.Admin.ListBookingsHandler)
		adminGroup.GET("/washers", hb.Admin.ListWashersHandler)
		adminGroup.GET("/metrics", hb.Admin.GetMetricsHandler)
		adminGroup.GET("/actions", hb.Admin.LegalActionsHandler)
		adminGroup.POST("/bookings/:id/assign", hb.Admin.AssignWasherHandler)
		adminGroup.POST("/bookings/:id/status", hb.Admin.UpdateBookingStatusHandler)
		adminGroup.POST("/washers/:id/status", hb.Admin.UpdateWasherStatusHandler)
		adminGroup.POST("/notify", hb.Admin.SendNotificationHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterCatalogRoutes(r, hb)
	RegisterWizardRoutes(r, hb)
	RegisterWashesRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
