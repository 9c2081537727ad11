package api

import (
	"context"

	"payment_api/internal/domain"
	"payment_api/internal/service"

	"github.com/google/uuid"
)

// In-memory stands-ins for the store interfaces, enough to drive the
// handlers through the service layer without a database.

type fakeUsers map[uint]domain.User

func (f fakeUsers) GetByID(_ context.Context, userID uint) (*domain.User, error) {
	u, ok := f[userID]
	if !ok {
		return nil, service.ErrUserNotFound
	}
	return &u, nil
}

func (f fakeUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range f {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, service.ErrUserNotFound
}

func (f fakeUsers) Create(_ context.Context, user *domain.User) error {
	for _, u := range f {
		if u.Email == user.Email {
			return service.ErrEmailExists
		}
	}
	user.ID = uint(len(f) + 1)
	f[user.ID] = *user
	return nil
}

func (f fakeUsers) Update(_ context.Context, user *domain.User) error {
	f[user.ID] = *user
	return nil
}

func (f fakeUsers) Delete(_ context.Context, user *domain.User) error {
	delete(f, user.ID)
	return nil
}

func (f fakeUsers) GetAllNonAdmin(context.Context) ([]domain.User, error) {
	var users []domain.User
	for _, u := range f {
		if !u.IsAdmin {
			users = append(users, u)
		}
	}
	return users, nil
}

type fakeAccounts []domain.Account

func (f fakeAccounts) GetByID(_ context.Context, accountID uint) (*domain.Account, error) {
	for _, a := range f {
		if a.ID == accountID {
			account := a
			return &account, nil
		}
	}
	return nil, service.ErrAccountNotFound
}

func (f fakeAccounts) GetAllByOwner(_ context.Context, userID uint) ([]domain.Account, error) {
	var accounts []domain.Account
	for _, a := range f {
		if a.UserID == userID {
			accounts = append(accounts, a)
		}
	}
	return accounts, nil
}

func (f fakeAccounts) Create(_ context.Context, accountID, userID uint) (*domain.Account, error) {
	return &domain.Account{ID: accountID, UserID: userID}, nil
}

func (f fakeAccounts) AdjustBalance(context.Context, uint, float64) error { return nil }

type fakePayments []domain.Payment

func (f fakePayments) GetByTransactionID(_ context.Context, transactionID uuid.UUID) (*domain.Payment, error) {
	for _, p := range f {
		if p.TransactionID == transactionID {
			payment := p
			return &payment, nil
		}
	}
	return nil, service.ErrPaymentNotFound
}

func (f fakePayments) Insert(context.Context, uuid.UUID, uint, float64, string) error {
	return nil
}

func (f fakePayments) GetAllByAccount(_ context.Context, accountID uint) ([]domain.Payment, error) {
	var payments []domain.Payment
	for _, p := range f {
		if p.AccountID == accountID {
			payments = append(payments, p)
		}
	}
	return payments, nil
}
