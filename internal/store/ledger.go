package store

import (
	"context"                      // Context for database operations
	"payment_api/internal/service" // Store interfaces

	"gorm.io/gorm" // GORM ORM library
)

// Ledger scopes account and payment operations to one database
// transaction
type Ledger struct {
	db *gorm.DB // Database handle
}

// NewLedger returns a Ledger backed by db
func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

// Transaction runs fn against transaction-scoped account and payment
// stores. A nil return commits; any error rolls back every operation fn
// performed, and the underlying connection is released on every path.
func (l *Ledger) Transaction(ctx context.Context, fn func(accounts service.AccountStore, payments service.PaymentStore) error) error {
	return l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewAccounts(tx), NewPayments(tx)) // Stores bound to the transaction
	})
}
