package handlers

import (
	"net/http"

	"priisme/middleware"
	"priisme/services/cart"

	"github.com/gin-gonic/gin"
)

// SessionHandler tears down server-side session state when a client ends its
// session.
type SessionHandler struct {
	carts *cart.Registry
}

func NewSessionHandler(carts *cart.Registry) *SessionHandler {
	return &SessionHandler{carts: carts}
}

// SignOut publishes the sign-out to the caller's cart session and evicts it.
// The remote cart rows survive for the next sign-in; only in-memory state is
// discarded.
func (h *SessionHandler) SignOut(c *gin.Context) {
	user := middleware.IdentityFrom(c)
	if user != nil {
		h.carts.Evict(user.ID)
	}
	c.Status(http.StatusNoContent)
}
