package service

import (
	"context"                     // Context for blocking operations
	"payment_api/internal/domain" // Importing domain models
)

// AccountService answers account queries for users and administrators
type AccountService struct {
	users    UserStore    // User lookups for target validation
	accounts AccountStore // Account reads
}

// NewAccountService wires an account service from its collaborators
func NewAccountService(users UserStore, accounts AccountStore) *AccountService {
	return &AccountService{users: users, accounts: accounts}
}

// GetCurrentUserAccounts lists the accounts owned by the calling user
func (s *AccountService) GetCurrentUserAccounts(ctx context.Context, user *domain.User) ([]domain.Account, error) {
	return s.accounts.GetAllByOwner(ctx, user.ID)
}

// GetAccountsByUserID lists the accounts of the user with the given id.
// The target must exist and must not be an administrator.
func (s *AccountService) GetAccountsByUserID(ctx context.Context, userID uint) ([]domain.Account, error) {
	target, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err // ErrUserNotFound or a storage failure
	}
	if target.IsAdmin {
		return nil, ErrAdminTarget // Admin data is not exposed here
	}
	return s.accounts.GetAllByOwner(ctx, userID)
}
