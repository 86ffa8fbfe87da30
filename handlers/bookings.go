package handlers

import (
	"net/http"

	bookingRepo "priisme/database/repository/booking"
	"priisme/middleware"
	"priisme/utils"

	"github.com/gin-gonic/gin"
)

// BookingRecordsHandler serves a user's persisted bookings.
type BookingRecordsHandler struct {
	bookings bookingRepo.BookingRepository
}

func NewBookingRecordsHandler(bookings bookingRepo.BookingRepository) *BookingRecordsHandler {
	return &BookingRecordsHandler{bookings: bookings}
}

// ListMyBookings returns the caller's bookings, newest first.
func (h *BookingRecordsHandler) ListMyBookings(c *gin.Context) {
	user := middleware.IdentityFrom(c)
	if user == nil {
		utils.JSONError(c, http.StatusUnauthorized, "Sign in required", "")
		return
	}

	bookings, err := h.bookings.ListByUser(c.Request.Context(), user.ID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
