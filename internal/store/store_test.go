package store_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"

	"payment_api/internal/domain"
	"payment_api/internal/service"
	"payment_api/internal/store"

	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupDB connects to the database named by TEST_DATABASE_DSN, applies
// the schema and starts from empty tables. Tests are skipped when no
// database is available.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN is not set")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("db connection: %v", err)
	}
	if err := db.AutoMigrate(&domain.User{}, &domain.Account{}, &domain.Payment{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	for _, table := range []string{"payments", "accounts", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("reset %s: %v", table, err)
		}
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, id uint) {
	t.Helper()
	user := domain.User{ID: id, Email: uuid.NewString() + "@example.com", FullName: "Test User", HashedPassword: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
}

func TestAccountsCreateAndDuplicate(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db, 1)
	accounts := store.NewAccounts(db)
	ctx := context.Background()

	account, err := accounts.Create(ctx, 42, 1)
	if err != nil {
		t.Fatalf("create account: %v", err)
	}
	if account.ID != 42 || account.Balance != 0 {
		t.Fatalf("expected account 42 with zero balance, got %+v", account)
	}

	if _, err := accounts.Create(ctx, 42, 1); !errors.Is(err, service.ErrAccountExists) {
		t.Fatalf("expected ErrAccountExists, got %v", err)
	}
}

func TestAccountsGetByIDNotFound(t *testing.T) {
	db := setupDB(t)
	accounts := store.NewAccounts(db)

	if _, err := accounts.GetByID(context.Background(), 404); !errors.Is(err, service.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountsAdjustBalanceMissingAccount(t *testing.T) {
	db := setupDB(t)
	accounts := store.NewAccounts(db)

	if err := accounts.AdjustBalance(context.Background(), 404, 10); !errors.Is(err, service.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountsAdjustBalanceConcurrent(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db, 1)
	accounts := store.NewAccounts(db)
	ctx := context.Background()

	if _, err := accounts.Create(ctx, 42, 1); err != nil {
		t.Fatalf("create account: %v", err)
	}

	const n = 20
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- accounts.AdjustBalance(ctx, 42, 1.5)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("adjust balance: %v", err)
		}
	}

	account, err := accounts.GetByID(ctx, 42)
	if err != nil {
		t.Fatalf("get account: %v", err)
	}
	if account.Balance != n*1.5 {
		t.Fatalf("expected balance %v, got %v", n*1.5, account.Balance)
	}
}

func TestPaymentsInsertDuplicate(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db, 1)
	accounts := store.NewAccounts(db)
	payments := store.NewPayments(db)
	ctx := context.Background()

	if _, err := accounts.Create(ctx, 42, 1); err != nil {
		t.Fatalf("create account: %v", err)
	}

	txID := uuid.New()
	if err := payments.Insert(ctx, txID, 42, 100, "token"); err != nil {
		t.Fatalf("insert payment: %v", err)
	}
	if err := payments.Insert(ctx, txID, 42, 100, "token"); !errors.Is(err, service.ErrDuplicateTransaction) {
		t.Fatalf("expected ErrDuplicateTransaction, got %v", err)
	}

	stored, err := payments.GetByTransactionID(ctx, txID)
	if err != nil {
		t.Fatalf("get payment: %v", err)
	}
	if stored.AccountID != 42 || stored.Amount != 100 {
		t.Fatalf("unexpected stored payment: %+v", stored)
	}
}

func TestLedgerRollsBackOnError(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db, 1)
	ledger := store.NewLedger(db)
	accounts := store.NewAccounts(db)
	ctx := context.Background()

	failure := errors.New("abort")
	err := ledger.Transaction(ctx, func(txAccounts service.AccountStore, txPayments service.PaymentStore) error {
		if _, err := txAccounts.Create(ctx, 42, 1); err != nil {
			return err
		}
		if err := txAccounts.AdjustBalance(ctx, 42, 100); err != nil {
			return err
		}
		if err := txPayments.Insert(ctx, uuid.New(), 42, 100, "token"); err != nil {
			return err
		}
		return failure
	})
	if !errors.Is(err, failure) {
		t.Fatalf("expected the transaction error to propagate, got %v", err)
	}

	// Nothing may survive the rollback, not even the account creation.
	if _, err := accounts.GetByID(ctx, 42); !errors.Is(err, service.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound after rollback, got %v", err)
	}
	var count int64
	if err := db.Model(&domain.Payment{}).Count(&count).Error; err != nil {
		t.Fatalf("count payments: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 payments after rollback, got %d", count)
	}
}

func TestUsersCreateDuplicateEmail(t *testing.T) {
	db := setupDB(t)
	users := store.NewUsers(db)
	ctx := context.Background()

	first := domain.User{Email: "dup@example.com", FullName: "First", HashedPassword: "x"}
	if err := users.Create(ctx, &first); err != nil {
		t.Fatalf("create user: %v", err)
	}
	second := domain.User{Email: "dup@example.com", FullName: "Second", HashedPassword: "x"}
	if err := users.Create(ctx, &second); !errors.Is(err, service.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestUsersGetByIDNotFound(t *testing.T) {
	db := setupDB(t)
	users := store.NewUsers(db)

	if _, err := users.GetByID(context.Background(), 404); !errors.Is(err, service.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
