package core

import (
	"time"
)

// Instead of implementing full value objects, I'm using some alias types and helper methods here ...

// UserIDInt64 represents a user account identifier.
type UserIDInt64 = int64

// BookIDInt64 represents a book identifier.
type BookIDInt64 = int64

// BorrowIDInt64 represents a borrow record identifier.
type BorrowIDInt64 = int64

// FineIDInt64 represents a fine record identifier.
type FineIDInt64 = int64

// OccurredAtTS represents when something happened in the domain.
type OccurredAtTS = time.Time

// ToOccurredAt converts a time to OccurredAtTS with UTC normalization and microsecond precision.
func ToOccurredAt(t time.Time) OccurredAtTS {
	return t.UTC().Truncate(time.Microsecond)
}
