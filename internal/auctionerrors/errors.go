package auctionerrors

import "errors"

// Store-level errors
var (
	ErrNotFound = errors.New("not found")
	ErrNoBids   = errors.New("no bids found for listing")
)

// business logic errors
var (
	ErrValidation    = errors.New("validation failed")
	ErrEmptyText     = errors.New("comment text is empty")
	ErrBidTooLow     = errors.New("bid amount too low")
	ErrListingClosed = errors.New("listing is closed")
	ErrForbidden     = errors.New("action not allowed for this user")
)

// identity errors
var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthorized       = errors.New("authentication required")
)
