package routes

import (
	"net/http"
	"time"

	"mesafy/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCORS applies the CORS policy for browser-based admin tooling.
func RegisterCORS(r *gin.Engine) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
}

// RegisterAvailabilityRoutes registers the availability engine endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.POST("/check", hb.CheckAvailabilityHandler)
		api.GET("/services", hb.MatchServicesHandler)
		api.GET("/slots", hb.GenerateSlotsHandler)
		api.GET("/release-time", hb.ReleaseTimeHandler)
	}
}

// RegisterServiceRoutes registers the service window admin endpoints.
func RegisterServiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.POST("/validate", hb.ValidateServiceHandler)
		api.POST("", hb.CreateServiceHandler)
		api.GET("", hb.ListServicesHandler)
		api.PATCH("/:id/active", hb.SetServiceActiveHandler)
	}
}

// RegisterReservationRoutes registers the booking flow endpoints.
func RegisterReservationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reservations")
	{
		api.POST("", hb.CreateReservationHandler)
		api.GET("/:id", hb.GetReservationHandler)
		api.PATCH("/:id/status", hb.UpdateReservationStatusHandler)
		api.POST("/:id/reschedule", hb.RescheduleReservationHandler)
	}
}

// RegisterRestaurantRoutes registers the table admin endpoints.
func RegisterRestaurantRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/restaurants")
	{
		api.GET("/:id/tables", hb.ListTablesHandler)
		api.POST("/:id/tables", hb.CreateTableHandler)
		api.PUT("/:id/tables/:tableId", hb.UpdateTableHandler)
		api.DELETE("/:id/tables/:tableId", hb.DeleteTableHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Mesafy"})
	})
}
