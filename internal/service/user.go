package service

import (
	"context"                     // Context for blocking operations
	"fmt"                         // Error wrapping
	"payment_api/internal/domain" // Importing domain models

	"golang.org/x/crypto/bcrypt" // Password hashing
)

// UserService implements the administrative user operations
type UserService struct {
	users UserStore // User persistence
}

// NewUserService wires a user service from its collaborators
func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// UserUpdate carries the optional fields of an update request; nil
// fields are left untouched
type UserUpdate struct {
	Email    *string // New e-mail, must stay unique
	FullName *string // New full name
	Password *string // New plain-text password, hashed before storage
}

// CreateUser registers a new non-admin user with a hashed password
func (s *UserService) CreateUser(ctx context.Context, email, fullName, password string) (*domain.User, error) {
	// Hash the password before it ever reaches the store
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &domain.User{
		Email:          email,        // Unique login e-mail
		FullName:       fullName,     // Display name
		HashedPassword: string(hash), // Bcrypt hash
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err // ErrEmailExists or a storage failure
	}
	return user, nil
}

// GetUser fetches a non-admin user by id
func (s *UserService) GetUser(ctx context.Context, userID uint) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err // ErrUserNotFound or a storage failure
	}
	if user.IsAdmin {
		return nil, ErrAdminTarget // Admin data is not exposed here
	}
	return user, nil
}

// GetUsers lists every non-admin user
func (s *UserService) GetUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.GetAllNonAdmin(ctx)
}

// UpdateUser applies the non-nil fields of update to a non-admin user
func (s *UserService) UpdateUser(ctx context.Context, userID uint, update UserUpdate) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err // ErrUserNotFound or a storage failure
	}
	if user.IsAdmin {
		return nil, ErrAdminTarget // Administrators are not updated here
	}
	if update.Email != nil {
		user.Email = *update.Email // New e-mail
	}
	if update.FullName != nil {
		user.FullName = *update.FullName // New full name
	}
	if update.Password != nil {
		// Re-hash the new password
		hash, err := bcrypt.GenerateFromPassword([]byte(*update.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.HashedPassword = string(hash)
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err // ErrEmailExists or a storage failure
	}
	return user, nil
}

// DeleteUser removes a non-admin user together with its accounts and
// payments
func (s *UserService) DeleteUser(ctx context.Context, userID uint) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err // ErrUserNotFound or a storage failure
	}
	if user.IsAdmin {
		return ErrAdminTarget // Administrators are not deleted here
	}
	return s.users.Delete(ctx, user)
}
