package api

import (
	"context"                         // Context for Redis operations
	"net/http"                        // HTTP status codes
	"payment_api/internal/middleware" // Current-user helper
	"payment_api/internal/service"    // Business logic
	"payment_api/internal/utils"      // Cache helpers
	"strconv"                         // Query parameter parsing
	"time"                            // Cache TTL

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// AccountResponse represents an account returned to the caller
type AccountResponse struct {
	AccountID uint    `json:"account_id"` // Account identifier
	Balance   float64 `json:"balance"`    // Current balance
}

// GetCurrentUserAccountsHandler returns the authenticated user's
// accounts
func GetCurrentUserAccountsHandler(accounts *service.AccountService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c) // Get the authenticated user
		// Check that a user is authenticated
		if user == nil {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		// Administrators do not own accounts
		if user.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin cannot have an account"})
			return
		}
		ctx := context.Background()                 // Context for Redis operations
		cacheKey := utils.AccountsCacheKey(user.ID) // Cache key for the account list
		var cached []AccountResponse                // Cached account list
		// If cached data found, return it
		if rdb != nil {
			if found, err := utils.GetCache(ctx, rdb, cacheKey, &cached); err == nil && found {
				c.JSON(http.StatusOK, gin.H{"accounts": cached, "cached": true})
				return
			}
		}
		// Fetch the accounts from the store
		list, err := accounts.GetCurrentUserAccounts(c.Request.Context(), user)
		if err != nil {
			respondError(c, err) // Map the failure onto a status code
			return
		}
		// A user without accounts gets a 404, matching the rest of the API
		if len(list) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "The current user has no accounts"})
			return
		}
		// Map accounts to response format
		resp := make([]AccountResponse, len(list))
		for i, a := range list {
			resp[i] = AccountResponse{
				AccountID: a.ID,      // Account identifier
				Balance:   a.Balance, // Current balance
			}
		}
		// Cache the response for future requests
		if rdb != nil {
			_ = utils.SetCache(ctx, rdb, cacheKey, resp, 60*time.Second)
		}
		c.JSON(http.StatusOK, gin.H{"accounts": resp, "cached": false}) // Return the account list
	}
}

// GetAccountsByUserIDHandler lets an administrator inspect a non-admin
// user's accounts
func GetAccountsByUserIDHandler(accounts *service.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Parse the target user id from the query string
		userID, err := strconv.ParseUint(c.Query("user_id"), 10, 64)
		if err != nil || userID == 0 {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user_id"})
			return
		}
		// Fetch the accounts of the target user
		list, err := accounts.GetAccountsByUserID(c.Request.Context(), uint(userID))
		if err != nil {
			respondError(c, err) // Map the failure onto a status code
			return
		}
		// A user without accounts gets a 404
		if len(list) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "User with this id has no accounts"})
			return
		}
		// Map accounts to response format
		resp := make([]AccountResponse, len(list))
		for i, a := range list {
			resp[i] = AccountResponse{
				AccountID: a.ID,      // Account identifier
				Balance:   a.Balance, // Current balance
			}
		}
		c.JSON(http.StatusOK, gin.H{"accounts": resp}) // Return the account list
	}
}
