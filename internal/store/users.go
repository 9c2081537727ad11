package store

import (
	"context"                      // Context for database operations
	"errors"                       // Error inspection
	"fmt"                          // Error wrapping
	"payment_api/internal/domain"  // Importing domain models
	"payment_api/internal/service" // Error taxonomy

	"gorm.io/gorm" // GORM ORM library
)

// Users provides access to user records
type Users struct {
	db *gorm.DB // Database handle
}

// NewUsers returns a user store backed by db
func NewUsers(db *gorm.DB) *Users {
	return &Users{db: db}
}

// GetByID fetches a user by primary key
func (s *Users) GetByID(ctx context.Context, userID uint) (*domain.User, error) {
	var user domain.User // User struct to hold data
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrUserNotFound // User does not exist
		}
		return nil, fmt.Errorf("get user by id: %w", err) // Wrap unexpected storage error
	}
	return &user, nil
}

// GetByEmail fetches a user by e-mail
func (s *Users) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User // User struct to hold data
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrUserNotFound // User does not exist
		}
		return nil, fmt.Errorf("get user by email: %w", err) // Wrap unexpected storage error
	}
	return &user, nil
}

// Create persists a new user; the e-mail must be unique
func (s *Users) Create(ctx context.Context, user *domain.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if isDuplicateEntry(err) {
			return service.ErrEmailExists // Unique constraint on email
		}
		return fmt.Errorf("create user: %w", err) // Wrap unexpected storage error
	}
	return nil
}

// Update persists changes to an existing user
func (s *Users) Update(ctx context.Context, user *domain.User) error {
	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		if isDuplicateEntry(err) {
			return service.ErrEmailExists // E-mail change collided with another user
		}
		return fmt.Errorf("update user: %w", err) // Wrap unexpected storage error
	}
	return nil
}

// Delete removes a user and, through the schema constraints, the
// accounts and payments owned by it
func (s *Users) Delete(ctx context.Context, user *domain.User) error {
	if err := s.db.WithContext(ctx).Delete(user).Error; err != nil {
		return fmt.Errorf("delete user: %w", err) // Wrap unexpected storage error
	}
	return nil
}

// GetAllNonAdmin lists every user that is not an administrator
func (s *Users) GetAllNonAdmin(ctx context.Context) ([]domain.User, error) {
	var users []domain.User // Slice to hold users
	if err := s.db.WithContext(ctx).Where("is_admin = ?", false).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err) // Wrap unexpected storage error
	}
	return users, nil
}
