package routes

import (
	"priisme/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers all endpoints for the booking wizard.
func RegisterBookingRoutes(r *gin.Engine, bookingHandler *handlers.BookingHandler, recordsHandler *handlers.BookingRecordsHandler) {
	booking := r.Group("/api/booking")
	{
		booking.GET("/slots", bookingHandler.TimeSlots)
		booking.POST("/session", bookingHandler.OpenWizard)
		booking.GET("/session/:sessionID", bookingHandler.GetWizard)
		booking.PUT("/session/:sessionID/service", bookingHandler.ChooseService)
		booking.PUT("/session/:sessionID/datetime", bookingHandler.SelectDateTime)
		booking.POST("/session/:sessionID/continue", bookingHandler.Continue)
		booking.POST("/session/:sessionID/back", bookingHandler.Back)
		booking.DELETE("/session/:sessionID", bookingHandler.DismissWizard)
		booking.POST("/session/:sessionID/confirm", bookingHandler.ConfirmAndPay)

		booking.GET("/mine", recordsHandler.ListMyBookings)
	}
}
