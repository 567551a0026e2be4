package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"meetdesk/handlers"
	"meetdesk/middleware"
)

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm MeetDesk"})
	})
}

// RegisterAdminRoutes sets up endpoints for booking management and settings.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		// Login is the only unauthenticated admin endpoint.
		adminGroup.POST("/login", hb.Auth.Login)

		adminGroup.Use(middleware.AdminAuthMiddleware())
		adminGroup.GET("/bookings", hb.Admin.ListBookings)
		adminGroup.GET("/bookings/:id", hb.Admin.GetBooking)
		adminGroup.PUT("/bookings/:id/approve", hb.Admin.ApproveBooking)
		adminGroup.PUT("/bookings/:id/cancel", hb.Admin.CancelBooking)
		adminGroup.PUT("/bookings/:id/complete", hb.Admin.CompleteBooking)
		adminGroup.POST("/bookings/:id/forward", hb.Admin.ForwardBooking)
		adminGroup.DELETE("/bookings/:id", hb.Admin.DeleteBooking)

		adminGroup.GET("/settings", hb.Admin.GetSettings)
		adminGroup.PUT("/settings", hb.Admin.UpdateSettings)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
