package api

import (
	"net/http"                        // HTTP status codes
	"payment_api/internal/middleware" // Current-user helper
	"payment_api/internal/service"    // Business logic

	"github.com/gin-gonic/gin" // Gin web framework
)

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"` // Login e-mail
	Password string `json:"password" binding:"required"`    // Password
}

// LoginHandler authenticates a user and returns an access and refresh
// token pair
func LoginHandler(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Check credentials and issue tokens
		tokens, err := auth.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondError(c, err) // Invalid credentials or storage failure
			return
		}
		c.JSON(http.StatusOK, tokens) // Return the token pair
	}
}

// RefreshTokenHandler issues a new access token for the authenticated
// user
func RefreshTokenHandler(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c) // Get the authenticated user
		// Check that a user is authenticated
		if user == nil {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		// Issue a fresh access token
		tokens, err := auth.RefreshToken(user)
		if err != nil {
			respondError(c, err) // Token generation failure
			return
		}
		c.JSON(http.StatusOK, tokens) // Return the new access token
	}
}
