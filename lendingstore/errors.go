package lendingstore

import (
	"errors"
)

var (
	// ErrNilDatabaseConnection is returned by engine factories when the supplied connection is nil.
	ErrNilDatabaseConnection = errors.New("database connection must not be nil")

	// ErrConcurrencyConflict is returned when a transaction lost a race on the
	// rows it touched (serialization failure or deadlock). It is retryable.
	ErrConcurrencyConflict = errors.New("concurrency conflict, transaction must be retried")

	// ErrRecordNotFound is returned when a requested row does not exist.
	// Handlers map it to the matching business error.
	ErrRecordNotFound = errors.New("record not found")

	// ErrUniqueViolation is returned when an insert hits a unique constraint
	// (email, isbn, category name, fine-per-borrow, transaction id).
	ErrUniqueViolation = errors.New("unique constraint violated")

	// ErrQuantityInvariantViolated is returned when an inventory update would
	// leave current_quantity negative or above original_quantity. It indicates
	// a data-integrity bug, not a business rule violation.
	ErrQuantityInvariantViolated = errors.New("book quantity invariant violated")

	// ErrBuildingQueryFailed is returned when goqu fails to render a statement.
	ErrBuildingQueryFailed = errors.New("failed to build sql query")

	// ErrStorageFailed wraps any other database failure; the surrounding
	// transaction is rolled back in full before it is surfaced.
	ErrStorageFailed = errors.New("storage operation failed")
)
