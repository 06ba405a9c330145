package middleware

import (
	"net/http"
	"strings"

	"kennel_backend/internal/auth"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer JWT on admin routes. Token issuance
// lives in the external auth service.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false, "error": "Authorization header missing or invalid", "code": "UNAUTHORIZED",
			})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false, "error": "Invalid token", "code": "UNAUTHORIZED",
			})
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// AdminMiddleware restricts a route to admin tokens. Must run after
// AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get("role")
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false, "error": "Access denied: no role", "code": "FORBIDDEN",
			})
			return
		}

		role, _ := roleVal.(string)
		if role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false, "error": "Access denied: insufficient permissions", "code": "FORBIDDEN",
			})
			return
		}

		c.Next()
	}
}
