package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"meetdesk/utils"
)

// AdminAuthMiddleware guards the management endpoints with a signed JWT
// issued by the login handler.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		sub, err := utils.ExtractSubjectFromToken(tokenString)
		if err != nil || sub != "admin" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}
