package core

import (
	"time"
)

// BookReturnedEventType is the event type identifier.
const BookReturnedEventType = "BookReturned"

// BookReturned represents when a borrowed book copy came back.
type BookReturned struct {
	EventType  string
	BorrowID   BorrowIDInt64
	BookID     BookIDInt64
	BorrowedBy UserIDInt64
	ReceivedBy UserIDInt64
	OccurredAt OccurredAtTS
}

// BuildBookReturned creates a new BookReturned event.
func BuildBookReturned(borrow Borrow, receivedBy UserIDInt64, occurredAt time.Time) BookReturned {
	return BookReturned{
		EventType:  BookReturnedEventType,
		BorrowID:   borrow.ID,
		BookID:     borrow.BookID,
		BorrowedBy: borrow.BorrowedBy,
		ReceivedBy: receivedBy,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookReturned) IsEventType() string {
	return BookReturnedEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookReturned) HasOccurredAt() time.Time {
	return e.OccurredAt
}
