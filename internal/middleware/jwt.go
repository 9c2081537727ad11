package middleware

import (
	"net/http"                     // HTTP status codes
	"payment_api/internal/service" // User lookups
	"payment_api/internal/utils"   // JWT utility functions
	"strings"                      // String manipulation

	"github.com/gin-gonic/gin" // Gin web framework
)

// CurrentUserKey is the context key under which the authenticated user
// is stored
const CurrentUserKey = "currentUser"

// JWTAuthMiddleware validates JWT tokens and resolves the calling user.
// The e-mail claim is looked up against the user store on every request,
// so a deleted user is rejected even with a still-valid token.
func JWTAuthMiddleware(secret string, users service.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// Check if the Authorization header is present and properly formatted
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ") // Extract the token string and parse it
		claims, err := utils.ParseJWT(tokenStr, secret)       // Parse the JWT token
		if err != nil {
			// If parsing fails, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		// Resolve the user behind the token
		user, err := users.GetByEmail(c.Request.Context(), claims.Email)
		if err != nil {
			// Token holder no longer exists or the lookup failed
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
			return
		}
		c.Set(CurrentUserKey, user) // Store the authenticated user in context
		c.Next()                    // Proceed to the next handler
	}
}

// AdminOnlyMiddleware lets only administrators through; it must run
// after JWTAuthMiddleware
func AdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c) // Get the authenticated user from context
		// Check that an authenticated admin is making the request
		if user == nil || !user.IsAdmin {
			// If not, abort with forbidden status
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		// If admin, proceed to the next handler
		c.Next()
	}
}
