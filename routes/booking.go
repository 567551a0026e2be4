package routes

import (
	"github.com/gin-gonic/gin"

	"meetdesk/handlers"
)

// RegisterBookingRoutes sets up the public scheduling flow endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	booking := r.Group("/api/booking")
	{
		booking.GET("/meeting-types", hb.Scheduling.GetMeetingTypes)
		booking.GET("/dates", hb.Scheduling.GetAvailableDates)
		booking.GET("/slots", hb.Scheduling.GetAvailableSlots)
		booking.POST("", hb.Scheduling.CreateBooking)
		booking.POST("/confirm", hb.Scheduling.CreateBooking)

		booking.POST("/session", hb.Scheduling.StartSession)
		booking.PUT("/session/:sessionID", hb.Scheduling.UpdateSession)
		booking.DELETE("/session/:sessionID", hb.Scheduling.CancelSession)
	}
}
