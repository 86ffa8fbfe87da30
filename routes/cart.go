package routes

import (
	"priisme/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterCartRoutes registers all cart endpoints.
func RegisterCartRoutes(r *gin.Engine, cartHandler *handlers.CartHandler) {
	cart := r.Group("/api/cart")
	{
		cart.GET("", cartHandler.GetCart)
		cart.POST("/items", cartHandler.AddItem)
		cart.PUT("/items/:itemID", cartHandler.UpdateQuantity)
		cart.DELETE("/items/:itemID", cartHandler.RemoveItem)
		cart.DELETE("", cartHandler.ClearCart)
		cart.POST("/checkout", cartHandler.Checkout)
	}
}
