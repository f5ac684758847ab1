package middleware

import (
	"net/http"
	"strings"

	"washly/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthAdminMiddleware gates the dashboard endpoints behind a signed
// admin token (issued out-of-band to operators).
func JWTAuthAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		subject, err := utils.ParseAdminToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Set("adminSubject", subject)
		c.Set("isAdmin", true)
		c.Next()
	}
}
