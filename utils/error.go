package utils

import (
	"net/http"

	"priisme/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the JSON body of every error the API returns. The variant
// tells the client which toast treatment to render, matching the variants the
// notification layer uses.
type ErrorResponse struct {
	Message string                     `json:"message"`
	Details string                     `json:"details,omitempty"`
	Variant models.NotificationVariant `json:"variant"`
}

// ErrorHandler recovers from panics anywhere in the handler chain and turns
// them into a destructive 500 response instead of dropping the connection.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("unhandled panic",
					zap.Any("error", err),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
					Variant: models.VariantDestructive,
				})
			}
		}()
		c.Next()
	}
}

// JSONError writes a standardized error body. Server-side failures render as
// destructive, client mistakes as normal.
func JSONError(c *gin.Context, status int, message string, details string) {
	variant := models.VariantNormal
	if status >= http.StatusInternalServerError {
		variant = models.VariantDestructive
	}
	GetLogger().Warn(message,
		zap.Int("status", status),
		zap.String("details", details),
	)
	c.JSON(status, ErrorResponse{Message: message, Details: details, Variant: variant})
}
