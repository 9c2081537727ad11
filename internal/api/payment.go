package api

import (
	"context"                         // Context for Redis operations
	"net/http"                        // HTTP status codes
	"payment_api/internal/middleware" // Current-user helper
	"payment_api/internal/service"    // Business logic
	"payment_api/internal/utils"      // Cache helpers
	"time"                            // Cache TTL

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/google/uuid"       // Transaction identifiers
	"github.com/redis/go-redis/v9" // Redis client
)

// PaymentRequest represents a third-party payment notification
type PaymentRequest struct {
	TransactionID uuid.UUID `json:"transaction_id" binding:"required"`  // Unique transaction id in the third-party system
	UserID        uint      `json:"user_id" binding:"required,gt=0"`    // Payee user id
	AccountID     uint      `json:"account_id" binding:"required,gt=0"` // Target account id
	Amount        float64   `json:"amount" binding:"required,gt=0"`     // Credit amount, strictly positive
	Signature     string    `json:"signature" binding:"required"`       // Authenticity token
}

// PaymentResponse represents a stored payment returned to the user
type PaymentResponse struct {
	TransactionID uuid.UUID `json:"transaction_id"` // External transaction id
	AccountID     uint      `json:"account_id"`     // Credited account id
	Amount        float64   `json:"amount"`         // Credited amount
}

// ProcessPaymentHandler ingests a payment notification. The endpoint is
// unauthenticated: the signature over the payment fields is the
// authenticity proof.
func ProcessPaymentHandler(payments *service.PaymentService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PaymentRequest // Bind JSON request to struct
		// Validate request
		if err := c.ShouldBindJSON(&req); err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment payload"})
			return
		}
		// Run the payment pipeline
		if err := payments.ProcessPayment(c.Request.Context(), req.TransactionID, req.UserID, req.AccountID, req.Amount, req.Signature); err != nil {
			respondError(c, err) // Map the failure onto a status code
			return
		}
		// Invalidate the payee's cached account and payment lists
		if rdb != nil {
			ctx := context.Background() // Context for Redis operations
			_ = utils.DeleteCache(ctx, rdb, utils.AccountsCacheKey(req.UserID), utils.PaymentsCacheKey(req.UserID))
		}
		// Return success response
		c.JSON(http.StatusOK, gin.H{"message": "Payment was successfully processed"})
	}
}

// GetPaymentsHandler returns the payments linked to the authenticated
// user's accounts
func GetPaymentsHandler(payments *service.PaymentService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c) // Get the authenticated user
		// Check that a user is authenticated
		if user == nil {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		// Administrators do not own payments
		if user.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin cannot have payments"})
			return
		}
		ctx := context.Background()                 // Context for Redis operations
		cacheKey := utils.PaymentsCacheKey(user.ID) // Cache key for the payment list
		var cached []PaymentResponse                // Cached payment list
		// If cached data found, return it
		if rdb != nil {
			if found, err := utils.GetCache(ctx, rdb, cacheKey, &cached); err == nil && found {
				c.JSON(http.StatusOK, gin.H{"payments": cached, "cached": true})
				return
			}
		}
		// Fetch the payments across all of the user's accounts
		list, err := payments.GetPayments(c.Request.Context(), user)
		if err != nil {
			respondError(c, err) // Map the failure onto a status code
			return
		}
		// A user without payments gets a 404, matching the rest of the API
		if len(list) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "User does not have payments"})
			return
		}
		// Map payments to response format
		resp := make([]PaymentResponse, len(list))
		for i, p := range list {
			resp[i] = PaymentResponse{
				TransactionID: p.TransactionID, // External transaction id
				AccountID:     p.AccountID,     // Credited account id
				Amount:        p.Amount,        // Credited amount
			}
		}
		// Cache the response for future requests
		if rdb != nil {
			_ = utils.SetCache(ctx, rdb, cacheKey, resp, 60*time.Second)
		}
		c.JSON(http.StatusOK, gin.H{"payments": resp, "cached": false}) // Return the payment list
	}
}
