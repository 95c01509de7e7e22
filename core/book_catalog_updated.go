package core

import (
	"time"
)

// BookCatalogUpdatedEventType is the event type identifier.
const BookCatalogUpdatedEventType = "BookCatalogUpdated"

// BookCatalogUpdated represents when a catalog entry was amended.
type BookCatalogUpdated struct {
	EventType     string
	BookID        BookIDInt64
	ChangedFields []string
	UpdatedBy     UserIDInt64
	OccurredAt    OccurredAtTS
}

// BuildBookCatalogUpdated creates a new BookCatalogUpdated event.
func BuildBookCatalogUpdated(bookID BookIDInt64, changes BookChanges, updatedBy UserIDInt64, occurredAt time.Time) BookCatalogUpdated {
	return BookCatalogUpdated{
		EventType:     BookCatalogUpdatedEventType,
		BookID:        bookID,
		ChangedFields: changes.FieldNames(),
		UpdatedBy:     updatedBy,
		OccurredAt:    ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookCatalogUpdated) IsEventType() string {
	return BookCatalogUpdatedEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookCatalogUpdated) HasOccurredAt() time.Time {
	return e.OccurredAt
}
