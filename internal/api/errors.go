package api

import (
	"errors"                       // Error inspection
	"net/http"                     // HTTP status codes
	"payment_api/internal/service" // Error taxonomy

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// respondError maps the service error taxonomy onto HTTP status codes.
// Anything outside the taxonomy is a storage failure: it is logged and
// reported as an opaque 500 so that callers can safely retry.
func respondError(c *gin.Context, err error) {
	switch {
	// Not found
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrAccountNotFound),
		errors.Is(err, service.ErrPaymentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	// Forbidden
	case errors.Is(err, service.ErrAdminPayee),
		errors.Is(err, service.ErrAdminTarget):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	// Validation
	case errors.Is(err, service.ErrAccountOwnership),
		errors.Is(err, service.ErrBadSignature):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	// Conflict
	case errors.Is(err, service.ErrDuplicateTransaction),
		errors.Is(err, service.ErrAccountExists),
		errors.Is(err, service.ErrEmailExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	// Authentication
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		// Storage failure, log it and hide the detail
		logrus.WithField("error", err.Error()).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
