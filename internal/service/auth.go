package service

import (
	"context"                     // Context for blocking operations
	"errors"                      // Error inspection
	"payment_api/internal/domain" // Importing domain models
	"payment_api/internal/utils"  // JWT helpers
	"time"                        // Token lifetimes

	"golang.org/x/crypto/bcrypt" // Password comparison
)

// TokenPair carries the tokens issued on a successful login. The refresh
// token is empty when only the access token was renewed.
type TokenPair struct {
	AccessToken  string `json:"access_token"`            // Short-lived access token
	RefreshToken string `json:"refresh_token,omitempty"` // Long-lived refresh token
	TokenType    string `json:"token_type"`              // Always "bearer"
}

// AuthService authenticates users and issues JWT tokens
type AuthService struct {
	users      UserStore     // User lookups by e-mail
	jwtSecret  string        // Signing secret, immutable after startup
	accessTTL  time.Duration // Access token lifetime
	refreshTTL time.Duration // Refresh token lifetime
}

// NewAuthService wires an auth service from its collaborators
func NewAuthService(users UserStore, jwtSecret string, accessTTL, refreshTTL time.Duration) *AuthService {
	return &AuthService{
		users:      users,
		jwtSecret:  jwtSecret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// Login checks the credentials and issues an access and a refresh token.
// A missing user and a wrong password are indistinguishable to the
// caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials // Do not reveal which part was wrong
		}
		return nil, err // Storage failure
	}
	// Compare provided password with stored hash
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	// Issue the token pair
	accessToken, err := utils.GenerateJWT(user.Email, s.jwtSecret, s.accessTTL)
	if err != nil {
		return nil, err
	}
	refreshToken, err := utils.GenerateJWT(user.Email, s.jwtSecret, s.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{
		AccessToken:  accessToken,  // Short-lived access token
		RefreshToken: refreshToken, // Long-lived refresh token
		TokenType:    "bearer",     // Token type
	}, nil
}

// RefreshToken issues a fresh access token for an already-authenticated
// user
func (s *AuthService) RefreshToken(user *domain.User) (*TokenPair, error) {
	accessToken, err := utils.GenerateJWT(user.Email, s.jwtSecret, s.accessTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: accessToken, TokenType: "bearer"}, nil
}
