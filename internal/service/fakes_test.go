package service_test

import (
	"context"
	"sync"

	"payment_api/internal/domain"
	"payment_api/internal/service"

	"github.com/google/uuid"
)

// memLedger is an in-memory implementation of the store interfaces.
// Transactions are serialized by a mutex and roll back by restoring a
// snapshot, which mirrors the no-partial-effects guarantee of the real
// database-backed ledger.
type memLedger struct {
	mu       sync.Mutex
	users    map[uint]domain.User
	accounts map[uint]domain.Account
	payments []domain.Payment
}

func newMemLedger() *memLedger {
	return &memLedger{
		users:    make(map[uint]domain.User),
		accounts: make(map[uint]domain.Account),
	}
}

func (m *memLedger) addUser(u domain.User)       { m.users[u.ID] = u }
func (m *memLedger) addAccount(a domain.Account) { m.accounts[a.ID] = a }

func (m *memLedger) balance(accountID uint) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.accounts[accountID].Balance
}

func (m *memLedger) paymentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.payments)
}

func (m *memLedger) hasAccount(accountID uint) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.accounts[accountID]
	return ok
}

// UserStore

func (m *memLedger) GetByID(_ context.Context, userID uint) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return nil, service.ErrUserNotFound
	}
	return &u, nil
}

func (m *memLedger) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, service.ErrUserNotFound
}

func (m *memLedger) Create(_ context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return service.ErrEmailExists
		}
	}
	user.ID = uint(len(m.users) + 1)
	m.users[user.ID] = *user
	return nil
}

func (m *memLedger) Update(_ context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, u := range m.users {
		if id != user.ID && u.Email == user.Email {
			return service.ErrEmailExists
		}
	}
	m.users[user.ID] = *user
	return nil
}

func (m *memLedger) Delete(_ context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, user.ID)
	return nil
}

func (m *memLedger) GetAllNonAdmin(_ context.Context) ([]domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var users []domain.User
	for _, u := range m.users {
		if !u.IsAdmin {
			users = append(users, u)
		}
	}
	return users, nil
}

// accountView and paymentView expose the unlocked internals; the public
// store methods take the lock, the transaction-scoped ones rely on the
// transaction already holding it.

type accountView struct{ m *memLedger }

func (v accountView) GetByID(_ context.Context, accountID uint) (*domain.Account, error) {
	a, ok := v.m.accounts[accountID]
	if !ok {
		return nil, service.ErrAccountNotFound
	}
	return &a, nil
}

func (v accountView) GetAllByOwner(_ context.Context, userID uint) ([]domain.Account, error) {
	var accounts []domain.Account
	for _, a := range v.m.accounts {
		if a.UserID == userID {
			accounts = append(accounts, a)
		}
	}
	return accounts, nil
}

func (v accountView) Create(_ context.Context, accountID, userID uint) (*domain.Account, error) {
	if _, ok := v.m.accounts[accountID]; ok {
		return nil, service.ErrAccountExists
	}
	a := domain.Account{ID: accountID, UserID: userID}
	v.m.accounts[accountID] = a
	return &a, nil
}

func (v accountView) AdjustBalance(_ context.Context, accountID uint, delta float64) error {
	a, ok := v.m.accounts[accountID]
	if !ok {
		return service.ErrAccountNotFound
	}
	a.Balance += delta
	v.m.accounts[accountID] = a
	return nil
}

type paymentView struct{ m *memLedger }

func (v paymentView) GetByTransactionID(_ context.Context, transactionID uuid.UUID) (*domain.Payment, error) {
	for i := range v.m.payments {
		if v.m.payments[i].TransactionID == transactionID {
			p := v.m.payments[i]
			return &p, nil
		}
	}
	return nil, service.ErrPaymentNotFound
}

func (v paymentView) Insert(_ context.Context, transactionID uuid.UUID, accountID uint, amount float64, token string) error {
	for i := range v.m.payments {
		if v.m.payments[i].TransactionID == transactionID {
			return service.ErrDuplicateTransaction
		}
	}
	v.m.payments = append(v.m.payments, domain.Payment{
		TransactionID: transactionID,
		AccountID:     accountID,
		Amount:        amount,
		Signature:     token,
	})
	return nil
}

func (v paymentView) GetAllByAccount(_ context.Context, accountID uint) ([]domain.Payment, error) {
	var payments []domain.Payment
	for _, p := range v.m.payments {
		if p.AccountID == accountID {
			payments = append(payments, p)
		}
	}
	return payments, nil
}

// Locked wrappers used outside transactions.

func (m *memLedger) accountStore() service.AccountStore { return lockedAccounts{m} }
func (m *memLedger) paymentStore() service.PaymentStore { return lockedPayments{m} }

type lockedAccounts struct{ m *memLedger }

func (l lockedAccounts) GetByID(ctx context.Context, accountID uint) (*domain.Account, error) {
	l.m.mu.Lock()
	defer l.m.mu.Unlock()
	return accountView{l.m}.GetByID(ctx, accountID)
}

func (l lockedAccounts) GetAllByOwner(ctx context.Context, userID uint) ([]domain.Account, error) {
	l.m.mu.Lock()
	defer l.m.mu.Unlock()
	return accountView{l.m}.GetAllByOwner(ctx, userID)
}

func (l lockedAccounts) Create(ctx context.Context, accountID, userID uint) (*domain.Account, error) {
	l.m.mu.Lock()
	defer l.m.mu.Unlock()
	return accountView{l.m}.Create(ctx, accountID, userID)
}

func (l lockedAccounts) AdjustBalance(ctx context.Context, accountID uint, delta float64) error {
	l.m.mu.Lock()
	defer l.m.mu.Unlock()
	return accountView{l.m}.AdjustBalance(ctx, accountID, delta)
}

type lockedPayments struct{ m *memLedger }

func (l lockedPayments) GetByTransactionID(ctx context.Context, transactionID uuid.UUID) (*domain.Payment, error) {
	l.m.mu.Lock()
	defer l.m.mu.Unlock()
	return paymentView{l.m}.GetByTransactionID(ctx, transactionID)
}

func (l lockedPayments) Insert(ctx context.Context, transactionID uuid.UUID, accountID uint, amount float64, token string) error {
	l.m.mu.Lock()
	defer l.m.mu.Unlock()
	return paymentView{l.m}.Insert(ctx, transactionID, accountID, amount, token)
}

func (l lockedPayments) GetAllByAccount(ctx context.Context, accountID uint) ([]domain.Payment, error) {
	l.m.mu.Lock()
	defer l.m.mu.Unlock()
	return paymentView{l.m}.GetAllByAccount(ctx, accountID)
}

// Transaction serializes transactions and restores a snapshot when fn
// fails, so a failed pipeline leaves no trace.
func (m *memLedger) Transaction(_ context.Context, fn func(accounts service.AccountStore, payments service.PaymentStore) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	accountsBackup := make(map[uint]domain.Account, len(m.accounts))
	for id, a := range m.accounts {
		accountsBackup[id] = a
	}
	paymentsBackup := make([]domain.Payment, len(m.payments))
	copy(paymentsBackup, m.payments)

	if err := fn(accountView{m}, paymentView{m}); err != nil {
		m.accounts = accountsBackup
		m.payments = paymentsBackup
		return err
	}
	return nil
}
