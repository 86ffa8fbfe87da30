package handlers

import (
	"errors"
	"net/http"

	"priisme/middleware"
	"priisme/services/booking"
	"priisme/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking wizard over HTTP.
type BookingHandler struct {
	wizard booking.WizardService
}

func NewBookingHandler(wizard booking.WizardService) *BookingHandler {
	return &BookingHandler{wizard: wizard}
}

// OpenWizard starts a wizard session for a salon.
func (h *BookingHandler) OpenWizard(c *gin.Context) {
	var input struct {
		SalonID string `json:"salon_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	wizard, err := h.wizard.Open(c.Request.Context(), input.SalonID)
	if err != nil {
		h.wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, wizard)
}

// GetWizard returns the current wizard state.
func (h *BookingHandler) GetWizard(c *gin.Context) {
	wizard, err := h.wizard.Get(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, wizard)
}

// ChooseService records the service selection and advances the wizard.
func (h *BookingHandler) ChooseService(c *gin.Context) {
	var input struct {
		ServiceID string `json:"service_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	wizard, err := h.wizard.ChooseService(c.Request.Context(), c.Param("sessionID"), input.ServiceID)
	if err != nil {
		h.wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, wizard)
}

// SelectDateTime records date and/or time slot.
func (h *BookingHandler) SelectDateTime(c *gin.Context) {
	var input struct {
		Date string `json:"date"`
		Time string `json:"time"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	wizard, err := h.wizard.SelectDateTime(c.Request.Context(), c.Param("sessionID"), input.Date, input.Time)
	if err != nil {
		h.wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, wizard)
}

// Continue advances to the confirmation stage.
func (h *BookingHandler) Continue(c *gin.Context) {
	wizard, err := h.wizard.Continue(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, wizard)
}

// Back walks one stage backwards.
func (h *BookingHandler) Back(c *gin.Context) {
	wizard, err := h.wizard.Back(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, wizard)
}

// DismissWizard discards the wizard and its draft.
func (h *BookingHandler) DismissWizard(c *gin.Context) {
	if err := h.wizard.Dismiss(c.Request.Context(), c.Param("sessionID")); err != nil {
		h.wizardError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ConfirmAndPay finalizes the booking and returns the payment redirect.
func (h *BookingHandler) ConfirmAndPay(c *gin.Context) {
	user := middleware.IdentityFrom(c)
	result, err := h.wizard.ConfirmAndPay(c.Request.Context(), c.Param("sessionID"), user)
	if err != nil {
		h.wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"booking":   result.Booking,
		"url":       result.Checkout.URL,
		"sessionId": result.Checkout.SessionID,
	})
}

// TimeSlots returns the fixed bookable time-of-day slots.
func (h *BookingHandler) TimeSlots(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"slots": booking.TimeSlots()})
}

func (h *BookingHandler) wizardError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "Booking session not found", "The booking session is missing or expired")
	case errors.Is(err, booking.ErrAuthRequired):
		utils.JSONError(c, http.StatusUnauthorized, "Sign in required", "Please sign in to confirm your booking")
	case errors.Is(err, booking.ErrInvalidTransition),
		errors.Is(err, booking.ErrIncompleteBooking),
		errors.Is(err, booking.ErrInvalidDate),
		errors.Is(err, booking.ErrInvalidSlot),
		errors.Is(err, booking.ErrServiceNotOffered):
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking step", err.Error())
	case errors.Is(err, booking.ErrCheckoutFailed):
		utils.JSONError(c, http.StatusBadGateway, "Checkout failed", "Please try again later")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Booking operation failed", err.Error())
	}
}
