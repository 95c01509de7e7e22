package core

import (
	"time"
)

// BookAddedToCatalogEventType is the event type identifier.
const BookAddedToCatalogEventType = "BookAddedToCatalog"

// BookAddedToCatalog represents when a book entered the catalog.
type BookAddedToCatalog struct {
	EventType  string
	BookID     BookIDInt64
	ISBN       string
	Quantity   int
	AddedBy    UserIDInt64
	OccurredAt OccurredAtTS
}

// BuildBookAddedToCatalog creates a new BookAddedToCatalog event.
func BuildBookAddedToCatalog(book Book, occurredAt time.Time) BookAddedToCatalog {
	return BookAddedToCatalog{
		EventType:  BookAddedToCatalogEventType,
		BookID:     book.ID,
		ISBN:       book.ISBN,
		Quantity:   book.OriginalQuantity,
		AddedBy:    book.AddedBy,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookAddedToCatalog) IsEventType() string {
	return BookAddedToCatalogEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookAddedToCatalog) HasOccurredAt() time.Time {
	return e.OccurredAt
}
