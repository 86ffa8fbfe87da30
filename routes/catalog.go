package routes

import (
	"priisme/handlers"
	"priisme/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the browsable storefront endpoints plus the
// authenticated media and device endpoints.
func RegisterCatalogRoutes(
	r *gin.Engine,
	catalogHandler *handlers.CatalogHandler,
	storageHandler *handlers.StorageHandler,
	deviceHandler *handlers.DeviceHandler,
) {
	catalog := r.Group("/api/catalog")
	{
		catalog.GET("/products", catalogHandler.ListProducts)
		catalog.GET("/products/:productID", catalogHandler.GetProduct)
		catalog.GET("/categories", catalogHandler.ListCategories)
		catalog.GET("/salons", catalogHandler.ListSalons)
		catalog.GET("/salons/:salonID", catalogHandler.GetSalon)
		catalog.GET("/salons/:salonID/services", catalogHandler.ListSalonServices)
	}

	if storageHandler != nil {
		media := r.Group("/api/media", middleware.RequireIdentity())
		{
			media.POST("/images", storageHandler.UploadImage)
			media.DELETE("/images/:publicID", storageHandler.DeleteImage)
		}
	}

	device := r.Group("/api/device", middleware.RequireIdentity())
	{
		device.POST("/token", deviceHandler.RegisterToken)
	}
}
