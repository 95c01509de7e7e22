package core

import (
	"time"
)

// FineAssessedEventType is the event type identifier.
const FineAssessedEventType = "FineAssessed"

// FineAssessed represents when an overdue borrow was charged a fine.
type FineAssessed struct {
	EventType  string
	BorrowID   BorrowIDInt64
	BorrowedBy UserIDInt64
	DaysLate   int
	Amount     float64
	OccurredAt OccurredAtTS
}

// BuildFineAssessed creates a new FineAssessed event.
func BuildFineAssessed(borrow Borrow, assessment FineAssessment, occurredAt time.Time) FineAssessed {
	return FineAssessed{
		EventType:  FineAssessedEventType,
		BorrowID:   borrow.ID,
		BorrowedBy: borrow.BorrowedBy,
		DaysLate:   assessment.DaysLate,
		Amount:     assessment.Amount,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e FineAssessed) IsEventType() string {
	return FineAssessedEventType
}

// HasOccurredAt returns when this event occurred.
func (e FineAssessed) HasOccurredAt() time.Time {
	return e.OccurredAt
}
