package core

import (
	"time"
)

// FinePaidEventType is the event type identifier.
const FinePaidEventType = "FinePaid"

// FinePaid represents when a fine was settled.
type FinePaid struct {
	EventType     string
	FineID        FineIDInt64
	Method        PaymentMethod
	Amount        float64
	TransactionID string
	CollectedBy   *UserIDInt64
	OccurredAt    OccurredAtTS
}

// BuildFinePaid creates a new FinePaid event. TransactionID is empty for
// cash payments, CollectedBy is nil for self-service online payments.
func BuildFinePaid(fine Fine, method PaymentMethod, transactionID string, collectedBy *UserIDInt64, occurredAt time.Time) FinePaid {
	return FinePaid{
		EventType:     FinePaidEventType,
		FineID:        fine.ID,
		Method:        method,
		Amount:        fine.Amount,
		TransactionID: transactionID,
		CollectedBy:   collectedBy,
		OccurredAt:    ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e FinePaid) IsEventType() string {
	return FinePaidEventType
}

// HasOccurredAt returns when this event occurred.
func (e FinePaid) HasOccurredAt() time.Time {
	return e.OccurredAt
}
