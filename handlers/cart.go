package handlers

import (
	"errors"
	"net/http"

	cartRepo "priisme/database/repository/cart"
	"priisme/middleware"
	"priisme/services/cart"
	"priisme/utils"

	"github.com/gin-gonic/gin"
)

// CartHandler exposes the cart session operations over HTTP.
type CartHandler struct {
	registry *cart.Registry
}

func NewCartHandler(registry *cart.Registry) *CartHandler {
	return &CartHandler{registry: registry}
}

func (h *CartHandler) session(c *gin.Context) (*cart.DefaultCartSession, bool) {
	user := middleware.IdentityFrom(c)
	if user == nil {
		utils.JSONError(c, http.StatusUnauthorized, "Sign in required", "Please sign in to use the cart")
		return nil, false
	}
	s, err := h.registry.Session(c.Request.Context(), user)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load cart", err.Error())
		return nil, false
	}
	return s, true
}

// GetCart returns the current items plus derived totals.
func (h *CartHandler) GetCart(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	totals := s.Totals()
	c.JSON(http.StatusOK, gin.H{
		"items":     s.Items(),
		"isLoading": s.IsLoading(),
		"totals":    totals,
	})
}

// AddItem adds a product variant to the cart.
func (h *CartHandler) AddItem(c *gin.Context) {
	var input struct {
		ProductID string `json:"product_id" binding:"required"`
		Quantity  int    `json:"quantity"`
		Size      string `json:"size"`
		Color     string `json:"color"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if input.Quantity == 0 {
		input.Quantity = 1
	}

	s, ok := h.session(c)
	if !ok {
		return
	}
	if err := s.AddItem(c.Request.Context(), input.ProductID, input.Quantity, input.Size, input.Color); err != nil {
		h.cartError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": s.Items(), "totals": s.Totals()})
}

// UpdateQuantity sets an item's quantity; below 1 removes it.
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	itemID := c.Param("itemID")
	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	s, ok := h.session(c)
	if !ok {
		return
	}
	if err := s.UpdateQuantity(c.Request.Context(), itemID, input.Quantity); err != nil {
		h.cartError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": s.Items(), "totals": s.Totals()})
}

// RemoveItem deletes one line item.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	if err := s.RemoveItem(c.Request.Context(), c.Param("itemID")); err != nil {
		h.cartError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": s.Items(), "totals": s.Totals()})
}

// ClearCart empties the cart, e.g. after a completed payment.
func (h *CartHandler) ClearCart(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	if err := s.Clear(c.Request.Context()); err != nil {
		h.cartError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": s.Items(), "totals": s.Totals()})
}

// Checkout submits the cart as one payment session and returns the redirect
// URL for the client to open in a new browsing context.
func (h *CartHandler) Checkout(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	session, err := s.Checkout(c.Request.Context())
	if err != nil {
		h.cartError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": session.URL, "sessionId": session.SessionID})
}

func (h *CartHandler) cartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, cart.ErrAuthRequired):
		utils.JSONError(c, http.StatusUnauthorized, "Sign in required", "Please sign in to add items to cart")
	case errors.Is(err, cartRepo.ErrItemNotFound):
		utils.JSONError(c, http.StatusNotFound, "Item not found", "The cart item does not exist")
	case errors.Is(err, cart.ErrEmptyCart):
		utils.JSONError(c, http.StatusBadRequest, "Cart is empty", "Add some items to your cart first")
	case errors.Is(err, cart.ErrCheckoutFailed):
		utils.JSONError(c, http.StatusBadGateway, "Checkout failed", "Please try again later")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Cart operation failed", err.Error())
	}
}
