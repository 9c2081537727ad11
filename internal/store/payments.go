package store

import (
	"context"                      // Context for database operations
	"errors"                       // Error inspection
	"fmt"                          // Error wrapping
	"payment_api/internal/domain"  // Importing domain models
	"payment_api/internal/service" // Error taxonomy

	"github.com/google/uuid" // Transaction identifiers
	"gorm.io/gorm"           // GORM ORM library
)

// Payments provides access to payment records
type Payments struct {
	db *gorm.DB // Database handle
}

// NewPayments returns a payment store backed by db
func NewPayments(db *gorm.DB) *Payments {
	return &Payments{db: db}
}

// GetByTransactionID fetches a payment by its external transaction id
func (s *Payments) GetByTransactionID(ctx context.Context, transactionID uuid.UUID) (*domain.Payment, error) {
	var payment domain.Payment // Payment struct to hold data
	if err := s.db.WithContext(ctx).Where("transaction_id = ?", transactionID).First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrPaymentNotFound // No payment with this transaction id
		}
		return nil, fmt.Errorf("get payment by transaction id: %w", err) // Wrap unexpected storage error
	}
	return &payment, nil
}

// Insert persists a payment record. The unique index on transaction_id
// rejects a duplicate even when an earlier existence check raced and
// missed it; that rejection surfaces as ErrDuplicateTransaction.
func (s *Payments) Insert(ctx context.Context, transactionID uuid.UUID, accountID uint, amount float64, token string) error {
	payment := domain.Payment{
		TransactionID: transactionID, // External transaction id
		AccountID:     accountID,     // Credited account
		Amount:        amount,        // Credited amount
		Signature:     token,         // Verified authenticity token
	}
	if err := s.db.WithContext(ctx).Create(&payment).Error; err != nil {
		if isDuplicateEntry(err) {
			return service.ErrDuplicateTransaction // Idempotency key already applied
		}
		return fmt.Errorf("insert payment: %w", err) // Wrap unexpected storage error
	}
	return nil
}

// GetAllByAccount lists the payments credited to an account
func (s *Payments) GetAllByAccount(ctx context.Context, accountID uint) ([]domain.Payment, error) {
	var payments []domain.Payment // Slice to hold payments
	if err := s.db.WithContext(ctx).Where("account_id = ?", accountID).Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("list payments by account: %w", err) // Wrap unexpected storage error
	}
	return payments, nil
}
