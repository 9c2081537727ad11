package api

import (
	"net/http"                        // HTTP status codes
	"payment_api/internal/domain"     // Importing domain models
	"payment_api/internal/middleware" // Current-user helper
	"payment_api/internal/service"    // Business logic
	"regexp"                          // Full-name validation
	"strconv"                         // Query parameter parsing
	"strings"                         // Password strength checks
	"unicode"                         // Password strength checks
	"unicode/utf8"                    // Character counting for length rules

	"github.com/gin-gonic/gin" // Gin web framework
)

// fullNamePattern matches names built from latin or cyrillic letters,
// hyphens and spaces
var fullNamePattern = regexp.MustCompile(`^[а-яА-Яa-zA-Z\- ]+$`)

// passwordSpecialSymbols are the characters that count as "special" for
// password strength
const passwordSpecialSymbols = "!@#$%^&*()-_=+[{]};:'\",<.>/?\\|`~"

// isValidFullName checks the length and the alphabet of a full name.
// Length is counted in characters: cyrillic letters are two bytes each.
func isValidFullName(fullName string) bool {
	if n := utf8.RuneCountInString(fullName); n < 1 || n > 20 {
		return false // Incorrect full name length
	}
	return fullNamePattern.MatchString(fullName) // Allowed characters only
}

// isStrongPassword requires at least 8 characters with an upper-case
// letter, a lower-case letter, a digit and a special symbol
func isStrongPassword(password string) bool {
	if utf8.RuneCountInString(password) < 8 {
		return false // Too short
	}
	var hasUpper, hasLower, hasDigit, hasSpecial bool // Character class flags
	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true // Upper-case letter present
		case unicode.IsLower(char):
			hasLower = true // Lower-case letter present
		case unicode.IsDigit(char):
			hasDigit = true // Digit present
		case strings.ContainsRune(passwordSpecialSymbols, char):
			hasSpecial = true // Special symbol present
		}
	}
	return hasUpper && hasLower && hasDigit && hasSpecial
}

// CreateUserRequest represents a user-creation request
type CreateUserRequest struct {
	Email     string `json:"email" binding:"required,email"` // Unique login e-mail
	FullName  string `json:"full_name" binding:"required"`   // Full name of the user
	Password1 string `json:"password1" binding:"required"`   // Password
	Password2 string `json:"password2" binding:"required"`   // Password confirmation
}

// UpdateUserRequest represents a user-update request; all fields are
// optional but at least one must be present
type UpdateUserRequest struct {
	Email     *string `json:"email" binding:"omitempty,email"` // New e-mail
	FullName  *string `json:"full_name"`                       // New full name
	Password1 *string `json:"password1"`                       // New password
	Password2 *string `json:"password2"`                       // New password confirmation
}

// UserResponse represents the user data returned by the API
type UserResponse struct {
	UserID   uint   `json:"user_id"`   // User identifier
	Email    string `json:"email"`     // Login e-mail
	FullName string `json:"full_name"` // Full name
}

// toUserResponse maps a domain user to its API representation
func toUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:   user.ID,       // User identifier
		Email:    user.Email,    // Login e-mail
		FullName: user.FullName, // Full name
	}
}

// CreateUserHandler registers a new user (admin only)
func CreateUserHandler(users *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateUserRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// The two password fields must match
		if req.Password1 != req.Password2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "The passwords do not match"})
			return
		}
		// Validate the full name
		if !isValidFullName(req.FullName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "The full name contains incorrect symbols or length"})
			return
		}
		// Validate password strength
		if !isStrongPassword(req.Password1) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "The password is weak"})
			return
		}
		// Create the user
		user, err := users.CreateUser(c.Request.Context(), req.Email, req.FullName, req.Password1)
		if err != nil {
			respondError(c, err) // Duplicate e-mail or storage failure
			return
		}
		// Return the created user
		c.JSON(http.StatusCreated, toUserResponse(user))
	}
}

// GetUserHandler fetches a non-admin user by id (admin only)
func GetUserHandler(users *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Parse the target user id from the query string
		userID, err := strconv.ParseUint(c.Query("user_id"), 10, 64)
		if err != nil || userID == 0 {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user_id"})
			return
		}
		// Fetch the user
		user, err := users.GetUser(c.Request.Context(), uint(userID))
		if err != nil {
			respondError(c, err) // Not found, admin target or storage failure
			return
		}
		c.JSON(http.StatusOK, toUserResponse(user)) // Return the user
	}
}

// GetCurrentUserHandler returns the authenticated user's own data
func GetCurrentUserHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c) // Get the authenticated user
		// Check that a user is authenticated
		if user == nil {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(http.StatusOK, toUserResponse(user)) // Return the user
	}
}

// ListUsersHandler lists every non-admin user (admin only)
func ListUsersHandler(users *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Fetch the non-admin users
		list, err := users.GetUsers(c.Request.Context())
		if err != nil {
			respondError(c, err) // Storage failure
			return
		}
		// No non-admin users is a 404, matching the rest of the API
		if len(list) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "No non-admin users"})
			return
		}
		// Map users to response format
		resp := make([]UserResponse, len(list))
		for i := range list {
			resp[i] = toUserResponse(&list[i])
		}
		c.JSON(http.StatusOK, gin.H{"users": resp}) // Return the user list
	}
}

// UpdateUserHandler updates a non-admin user (admin only)
func UpdateUserHandler(users *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Parse the target user id from the query string
		userID, err := strconv.ParseUint(c.Query("user_id"), 10, 64)
		if err != nil || userID == 0 {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user_id"})
			return
		}
		var req UpdateUserRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// At least one field must be provided
		if req.Email == nil && req.FullName == nil && req.Password1 == nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "At least one parameter must be provided"})
			return
		}
		// A password change needs a matching confirmation
		if req.Password1 != nil {
			if req.Password2 == nil || *req.Password1 != *req.Password2 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "The passwords do not match"})
				return
			}
			if !isStrongPassword(*req.Password1) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "The password is weak"})
				return
			}
		}
		// Validate the new full name if present
		if req.FullName != nil && !isValidFullName(*req.FullName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "The full name contains incorrect symbols or length"})
			return
		}
		// Apply the update
		user, err := users.UpdateUser(c.Request.Context(), uint(userID), service.UserUpdate{
			Email:    req.Email,     // New e-mail, if any
			FullName: req.FullName,  // New full name, if any
			Password: req.Password1, // New password, if any
		})
		if err != nil {
			respondError(c, err) // Not found, admin target, conflict or storage failure
			return
		}
		c.JSON(http.StatusOK, toUserResponse(user)) // Return the updated user
	}
}

// DeleteUserHandler deletes a non-admin user (admin only)
func DeleteUserHandler(users *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Parse the target user id from the query string
		userID, err := strconv.ParseUint(c.Query("user_id"), 10, 64)
		if err != nil || userID == 0 {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user_id"})
			return
		}
		// Delete the user
		if err := users.DeleteUser(c.Request.Context(), uint(userID)); err != nil {
			respondError(c, err) // Not found, admin target or storage failure
			return
		}
		// Return success response
		c.JSON(http.StatusOK, gin.H{"message": "User was successfully deleted"})
	}
}
