package middleware

import (
	"net/http"
	"strings"

	"priisme/models"
	"priisme/utils"

	"github.com/gin-gonic/gin"
)

// identityKey is the gin context key the resolved identity is stored under.
const identityKey = "identity"

// ResolveIdentity validates a bearer token when one is present and stores the
// resolved identity in the request context. Requests without a token proceed
// anonymously; operations that need an identity surface AuthRequired
// themselves so the client gets the blocking notification.
func ResolveIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, email, err := utils.ExtractIdentityFromToken(tokenString)
		if err != nil {
			// A presented but invalid token is rejected outright.
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		c.Set(identityKey, &models.Identity{ID: userID, Email: email})
		c.Next()
	}
}

// RequireIdentity aborts anonymous requests.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if IdentityFrom(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		c.Next()
	}
}

// IdentityFrom returns the resolved identity for this request, nil when
// anonymous.
func IdentityFrom(c *gin.Context) *models.Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	id, _ := v.(*models.Identity)
	return id
}
