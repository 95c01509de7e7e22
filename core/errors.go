package core

import (
	"errors"
)

// Business rule violations. All of them are detected before any mutation,
// so a caller never sees partial side effects alongside one of these.
var (
	ErrForbidden              = errors.New("actor does not have the required capability")
	ErrBookNotFound           = errors.New("book not found")
	ErrBookUnavailable        = errors.New("book is out of stock or is borrowed")
	ErrBorrowLimitExceeded    = errors.New("borrower has reached the maximum limit of borrowed books")
	ErrBorrowNotFound         = errors.New("borrow record not found")
	ErrBorrowAlreadyReturned  = errors.New("book already returned")
	ErrFineNotFound           = errors.New("fine not found or is already paid")
	ErrFineAlreadyExists      = errors.New("fine already exists for this borrow")
	ErrInvalidPaymentMethod   = errors.New("invalid payment method")
	ErrInvalidRole            = errors.New("invalid role")
	ErrEmailAlreadyRegistered = errors.New("email is already registered")
	ErrISBNAlreadyRegistered  = errors.New("isbn is already registered")
	ErrCategoryAlreadyExists  = errors.New("category already exists")
	ErrUserNotFound           = errors.New("user not found")
	ErrNotificationNotFound   = errors.New("notification not found or is already read")
	ErrMissingRequiredField   = errors.New("missing required field")
	ErrNoFieldsToUpdate       = errors.New("no fields to update")
)

// ErrorKind classifies an error for callers (e.g. a transport layer mapping
// to status codes). The core never encodes transport concerns itself.
type ErrorKind int

// The error taxonomy of the lending backend.
const (
	KindInternal ErrorKind = iota
	KindNotFound
	KindConflict
	KindLimitExceeded
	KindForbidden
	KindInvalidInput
)

// KindOf classifies err into the error taxonomy.
// Unrecognized errors (storage failures, marshaling failures, ...) are KindInternal.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindInternal

	case errors.Is(err, ErrBookNotFound),
		errors.Is(err, ErrBorrowNotFound),
		errors.Is(err, ErrFineNotFound),
		errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrNotificationNotFound):
		return KindNotFound

	case errors.Is(err, ErrBookUnavailable),
		errors.Is(err, ErrBorrowAlreadyReturned),
		errors.Is(err, ErrFineAlreadyExists),
		errors.Is(err, ErrEmailAlreadyRegistered),
		errors.Is(err, ErrISBNAlreadyRegistered),
		errors.Is(err, ErrCategoryAlreadyExists):
		return KindConflict

	case errors.Is(err, ErrBorrowLimitExceeded):
		return KindLimitExceeded

	case errors.Is(err, ErrForbidden):
		return KindForbidden

	case errors.Is(err, ErrInvalidPaymentMethod),
		errors.Is(err, ErrInvalidRole),
		errors.Is(err, ErrMissingRequiredField),
		errors.Is(err, ErrNoFieldsToUpdate):
		return KindInvalidInput

	default:
		return KindInternal
	}
}
