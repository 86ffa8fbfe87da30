package handlers

import (
	"net/http"

	userRepo "priisme/database/repository/user"
	"priisme/middleware"
	"priisme/utils"

	"github.com/gin-gonic/gin"
)

// DeviceHandler registers push-notification device tokens for the signed-in
// identity.
type DeviceHandler struct {
	users userRepo.UserRepository
}

func NewDeviceHandler(users userRepo.UserRepository) *DeviceHandler {
	return &DeviceHandler{users: users}
}

// RegisterToken stores the caller's FCM token.
func (h *DeviceHandler) RegisterToken(c *gin.Context) {
	user := middleware.IdentityFrom(c)
	if user == nil {
		utils.JSONError(c, http.StatusUnauthorized, "Sign in required", "")
		return
	}

	var input struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.users.UpsertDeviceToken(c.Request.Context(), user.ID, user.Email, input.Token); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to register device token", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}
