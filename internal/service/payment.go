package service

import (
	"context"                        // Context for blocking operations
	"errors"                         // Error inspection
	"payment_api/internal/domain"    // Importing domain models
	"payment_api/internal/signature" // Authenticity token verification

	"github.com/google/uuid"     // Transaction identifiers
	"github.com/sirupsen/logrus" // Logging library
)

// PaymentService orchestrates the payment pipeline: it validates the
// payer, resolves the account, enforces idempotency, verifies the
// authenticity token and atomically credits the account while recording
// the payment.
type PaymentService struct {
	users    UserStore           // User lookups for payer validation
	accounts AccountStore        // Account reads outside the commit
	payments PaymentStore        // Payment reads outside the commit
	ledger   Ledger              // Atomicity boundary for the commit
	verifier *signature.Verifier // Recomputes authenticity tokens
}

// NewPaymentService wires a payment service from its collaborators
func NewPaymentService(users UserStore, accounts AccountStore, payments PaymentStore, ledger Ledger, verifier *signature.Verifier) *PaymentService {
	return &PaymentService{
		users:    users,
		accounts: accounts,
		payments: payments,
		ledger:   ledger,
		verifier: verifier,
	}
}

// ProcessPayment applies a third-party payment notification. The steps
// run strictly in order and the first failure aborts the request:
//
//  1. the payer must exist and must not be an administrator;
//  2. an existing account must belong to the payer; a missing account is
//     only created later, after every validation has passed;
//  3. a transaction id that was already applied is a duplicate delivery;
//  4. the authenticity token must match the recomputed one;
//  5. account creation (if needed), the balance credit and the payment
//     record are committed as one atomic unit.
//
// Steps 2-5 run inside a single ledger transaction, so a failure at any
// point leaves no trace: no partial account creation, no balance change,
// no orphan payment row. The unique constraint on the transaction id is
// the last line of defense against two concurrent deliveries of the same
// payment; the losing insert surfaces as ErrDuplicateTransaction exactly
// like the step-3 check. Nothing is retried internally - resubmission is
// the caller's decision and is safe because of the idempotency key.
func (s *PaymentService) ProcessPayment(ctx context.Context, transactionID uuid.UUID, userID, accountID uint, amount float64, token string) error {
	// Step 1: payer validation
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err // ErrUserNotFound or a storage failure
	}
	if user.IsAdmin {
		return ErrAdminPayee // An administrator identity cannot receive payments
	}

	err = s.ledger.Transaction(ctx, func(accounts AccountStore, payments PaymentStore) error {
		// Step 2: account resolution
		account, err := accounts.GetByID(ctx, accountID)
		if err != nil && !errors.Is(err, ErrAccountNotFound) {
			return err // Storage failure
		}
		if account != nil && account.UserID != userID {
			return ErrAccountOwnership // Account belongs to someone else
		}

		// Step 3: idempotency check
		if _, err := payments.GetByTransactionID(ctx, transactionID); err == nil {
			return ErrDuplicateTransaction // Duplicate delivery, no mutation
		} else if !errors.Is(err, ErrPaymentNotFound) {
			return err // Storage failure
		}

		// Step 4: authenticity check
		if !s.verifier.Verify(transactionID, userID, accountID, amount, token) {
			return ErrBadSignature // Token does not match the recomputed one
		}

		// Step 5: commit
		if account == nil {
			// Lazy account creation, only after all validations passed
			if _, err := accounts.Create(ctx, accountID, userID); err != nil {
				return err
			}
		}
		if err := accounts.AdjustBalance(ctx, accountID, amount); err != nil {
			return err
		}
		return payments.Insert(ctx, transactionID, accountID, amount, token)
	})
	if err != nil {
		// Log the rejection with context
		logrus.WithFields(logrus.Fields{
			"transaction_id": transactionID, // External transaction id
			"user_id":        userID,        // Payer user id
			"account_id":     accountID,     // Target account id
			"error":          err.Error(),   // Rejection reason
		}).Warn("Payment rejected")
		return err
	}
	// Log the applied payment
	logrus.WithFields(logrus.Fields{
		"transaction_id": transactionID, // External transaction id
		"user_id":        userID,        // Payer user id
		"account_id":     accountID,     // Credited account id
		"amount":         amount,        // Credited amount
	}).Info("Payment applied")
	return nil
}

// GetPayments returns the union of payments across all of the user's
// accounts. A user without accounts or payments gets an empty slice,
// never an error.
func (s *PaymentService) GetPayments(ctx context.Context, user *domain.User) ([]domain.Payment, error) {
	accounts, err := s.accounts.GetAllByOwner(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	payments := make([]domain.Payment, 0) // Empty, not nil, when there is nothing
	for _, account := range accounts {
		accountPayments, err := s.payments.GetAllByAccount(ctx, account.ID)
		if err != nil {
			return nil, err
		}
		payments = append(payments, accountPayments...)
	}
	return payments, nil
}
