package core

import (
	"time"
)

// BookBorrowedEventType is the event type identifier.
const BookBorrowedEventType = "BookBorrowed"

// BookBorrowed represents when a book copy was lent to a borrower.
type BookBorrowed struct {
	EventType  string
	BorrowID   BorrowIDInt64
	BookID     BookIDInt64
	BorrowedBy UserIDInt64
	GivenBy    UserIDInt64
	DueDate    time.Time
	OccurredAt OccurredAtTS
}

// BuildBookBorrowed creates a new BookBorrowed event.
func BuildBookBorrowed(borrow Borrow, occurredAt time.Time) BookBorrowed {
	return BookBorrowed{
		EventType:  BookBorrowedEventType,
		BorrowID:   borrow.ID,
		BookID:     borrow.BookID,
		BorrowedBy: borrow.BorrowedBy,
		GivenBy:    borrow.GivenBy,
		DueDate:    borrow.DueDate,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookBorrowed) IsEventType() string {
	return BookBorrowedEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookBorrowed) HasOccurredAt() time.Time {
	return e.OccurredAt
}
