// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// Identity-related errors
	ErrPrincipalNotFound  = errors.New("principal not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")

	// Tenant-related errors
	ErrCompanyNotFound = errors.New("company not found")
	ErrProfileNotFound = errors.New("user profile not found")
	ErrNoCompany       = errors.New("user does not belong to a company")

	// Record-related errors
	ErrAccountNotFound          = errors.New("account not found")
	ErrContactNotFound          = errors.New("contact not found")
	ErrProductNotFound          = errors.New("product not found")
	ErrCallNoteNotFound         = errors.New("call note not found")
	ErrShippingLocationNotFound = errors.New("shipping location not found")

	// Backfill-related errors
	ErrBatchLimitExceeded = errors.New("collection exceeds backfill batch limit")
)
