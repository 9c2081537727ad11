package middleware

import (
	"payment_api/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin" // Gin web framework
)

// CurrentUser returns the authenticated user stored by
// JWTAuthMiddleware, or nil when the request is unauthenticated
func CurrentUser(c *gin.Context) *domain.User {
	value, exists := c.Get(CurrentUserKey) // Get the user from context
	if !exists {
		return nil // No authenticated user
	}
	user, ok := value.(*domain.User) // Assert the stored type
	if !ok {
		return nil // Unexpected type in context
	}
	return user
}
