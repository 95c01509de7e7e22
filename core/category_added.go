package core

import (
	"time"
)

// CategoryAddedEventType is the event type identifier.
const CategoryAddedEventType = "CategoryAdded"

// CategoryAdded represents when a book category entered the catalog.
type CategoryAdded struct {
	EventType  string
	CategoryID int64
	Name       string
	AddedBy    UserIDInt64
	OccurredAt OccurredAtTS
}

// BuildCategoryAdded creates a new CategoryAdded event.
func BuildCategoryAdded(category Category, occurredAt time.Time) CategoryAdded {
	return CategoryAdded{
		EventType:  CategoryAddedEventType,
		CategoryID: category.ID,
		Name:       category.Name,
		AddedBy:    category.AddedBy,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e CategoryAdded) IsEventType() string {
	return CategoryAddedEventType
}

// HasOccurredAt returns when this event occurred.
func (e CategoryAdded) HasOccurredAt() time.Time {
	return e.OccurredAt
}
