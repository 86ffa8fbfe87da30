package handlers

import (
	"net/http"

	"priisme/services/styling"
	"priisme/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StylingHandler exposes the AI styling advisor.
type StylingHandler struct {
	advisor styling.Advisor
}

func NewStylingHandler(advisor styling.Advisor) *StylingHandler {
	return &StylingHandler{advisor: advisor}
}

// Advise answers one styling prompt. A missing session ID starts a fresh
// conversation.
func (h *StylingHandler) Advise(c *gin.Context) {
	var input struct {
		SessionID string `json:"session_id"`
		Prompt    string `json:"prompt" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if input.SessionID == "" {
		input.SessionID = uuid.New().String()
	}

	reply, err := h.advisor.Advise(c.Request.Context(), input.SessionID, input.Prompt)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "styling advisor unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"session_id": input.SessionID, "reply": reply})
}
