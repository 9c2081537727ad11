package store

import (
	"context"                      // Context for database operations
	"errors"                       // Error inspection
	"fmt"                          // Error wrapping
	"payment_api/internal/domain"  // Importing domain models
	"payment_api/internal/service" // Error taxonomy

	"gorm.io/gorm" // GORM ORM library
)

// Accounts provides access to account records
type Accounts struct {
	db *gorm.DB // Database handle
}

// NewAccounts returns an account store backed by db
func NewAccounts(db *gorm.DB) *Accounts {
	return &Accounts{db: db}
}

// GetByID fetches an account by its caller-supplied identifier
func (s *Accounts) GetByID(ctx context.Context, accountID uint) (*domain.Account, error) {
	var account domain.Account // Account struct to hold data
	if err := s.db.WithContext(ctx).First(&account, accountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrAccountNotFound // Account does not exist
		}
		return nil, fmt.Errorf("get account by id: %w", err) // Wrap unexpected storage error
	}
	return &account, nil
}

// GetAllByOwner lists the accounts owned by a user; ordering is not
// significant
func (s *Accounts) GetAllByOwner(ctx context.Context, userID uint) ([]domain.Account, error) {
	var accounts []domain.Account // Slice to hold accounts
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("list accounts by owner: %w", err) // Wrap unexpected storage error
	}
	return accounts, nil
}

// Create persists a new account with zero balance. The identifier comes
// from the payment originator, not from the database.
func (s *Accounts) Create(ctx context.Context, accountID, userID uint) (*domain.Account, error) {
	account := domain.Account{ID: accountID, UserID: userID, Balance: 0}
	if err := s.db.WithContext(ctx).Create(&account).Error; err != nil {
		if isDuplicateEntry(err) {
			return nil, service.ErrAccountExists // Account id already taken
		}
		return nil, fmt.Errorf("create account: %w", err) // Wrap unexpected storage error
	}
	return &account, nil
}

// AdjustBalance applies balance += delta as a single UPDATE so that
// concurrent adjustments to the same account never lose an update.
// The delta is applied verbatim; balance policy belongs to the caller.
func (s *Accounts) AdjustBalance(ctx context.Context, accountID uint, delta float64) error {
	result := s.db.WithContext(ctx).
		Model(&domain.Account{}).
		Where("id = ?", accountID).
		Update("balance", gorm.Expr("balance + ?", delta)) // Atomic increment
	if result.Error != nil {
		return fmt.Errorf("adjust balance: %w", result.Error) // Wrap unexpected storage error
	}
	if result.RowsAffected == 0 {
		return service.ErrAccountNotFound // No such account to adjust
	}
	return nil
}
