package service

import "errors"

// Error taxonomy shared by the services and the stores. The API layer
// maps these onto HTTP status codes with errors.Is; anything outside
// this list is treated as a storage failure.
var (
	// Not found
	ErrUserNotFound    = errors.New("user does not exist")
	ErrAccountNotFound = errors.New("account does not exist")
	ErrPaymentNotFound = errors.New("payment does not exist")

	// Forbidden
	ErrAdminPayee  = errors.New("cannot process a payment if the user is an admin")
	ErrAdminTarget = errors.New("administrators cannot be accessed through this operation")

	// Validation
	ErrAccountOwnership = errors.New("account does not belong to the specified user")
	ErrBadSignature     = errors.New("signature is incorrect")

	// Conflict
	ErrDuplicateTransaction = errors.New("transaction with this id already exists")
	ErrAccountExists        = errors.New("account with this id already exists")
	ErrEmailExists          = errors.New("user with this email already exists")

	// Authentication
	ErrInvalidCredentials = errors.New("incorrect email or password")
)
