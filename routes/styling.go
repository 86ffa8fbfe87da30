package routes

import (
	"priisme/handlers"
	"priisme/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterStylingRoutes registers the AI styling advisor endpoint. The
// handler is nil when no Gemini key is configured.
func RegisterStylingRoutes(r *gin.Engine, stylingHandler *handlers.StylingHandler) {
	if stylingHandler == nil {
		return
	}
	styling := r.Group("/api/styling", middleware.RequireIdentity())
	{
		styling.POST("/advise", stylingHandler.Advise)
	}
}
