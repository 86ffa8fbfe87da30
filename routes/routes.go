package routes

import (
	"net/http"
	"time"

	"priisme/handlers"
	"priisme/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle collects every handler the router needs.
type HandlerBundle struct {
	Cart           *handlers.CartHandler
	Booking        *handlers.BookingHandler
	BookingRecords *handlers.BookingRecordsHandler
	Catalog        *handlers.CatalogHandler
	Storage        *handlers.StorageHandler
	Styling        *handlers.StylingHandler
	Device         *handlers.DeviceHandler
	Session        *handlers.SessionHandler
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/api/auth/signout", middleware.RequireIdentity(), hb.Session.SignOut)

	RegisterCartRoutes(r, hb.Cart)
	RegisterBookingRoutes(r, hb.Booking, hb.BookingRecords)
	RegisterCatalogRoutes(r, hb.Catalog, hb.Storage, hb.Device)
	RegisterStylingRoutes(r, hb.Styling)
}
