package service

import (
	"context"                     // Context for blocking operations
	"payment_api/internal/domain" // Importing domain models

	"github.com/google/uuid" // Transaction identifiers
)

// UserStore owns user records
type UserStore interface {
	GetByID(ctx context.Context, userID uint) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, user *domain.User) error
	GetAllNonAdmin(ctx context.Context) ([]domain.User, error)
}

// AccountStore owns account records keyed by the caller-supplied id
type AccountStore interface {
	GetByID(ctx context.Context, accountID uint) (*domain.Account, error)
	GetAllByOwner(ctx context.Context, userID uint) ([]domain.Account, error)
	Create(ctx context.Context, accountID, userID uint) (*domain.Account, error)
	AdjustBalance(ctx context.Context, accountID uint, delta float64) error
}

// PaymentStore owns payment records keyed by the external transaction id
type PaymentStore interface {
	GetByTransactionID(ctx context.Context, transactionID uuid.UUID) (*domain.Payment, error)
	Insert(ctx context.Context, transactionID uuid.UUID, accountID uint, amount float64, token string) error
	GetAllByAccount(ctx context.Context, accountID uint) ([]domain.Payment, error)
}

// Ledger runs account and payment operations as one atomic unit:
// either every operation performed by fn commits or none does.
type Ledger interface {
	Transaction(ctx context.Context, fn func(accounts AccountStore, payments PaymentStore) error) error
}
