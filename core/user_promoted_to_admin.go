package core

import (
	"time"
)

// UserPromotedToAdminEventType is the event type identifier.
const UserPromotedToAdminEventType = "UserPromotedToAdmin"

// UserPromotedToAdmin represents when an account was granted the admin role.
type UserPromotedToAdmin struct {
	EventType  string
	Email      string
	PromotedBy UserIDInt64
	OccurredAt OccurredAtTS
}

// BuildUserPromotedToAdmin creates a new UserPromotedToAdmin event.
func BuildUserPromotedToAdmin(email string, promotedBy UserIDInt64, occurredAt time.Time) UserPromotedToAdmin {
	return UserPromotedToAdmin{
		EventType:  UserPromotedToAdminEventType,
		Email:      email,
		PromotedBy: promotedBy,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e UserPromotedToAdmin) IsEventType() string {
	return UserPromotedToAdminEventType
}

// HasOccurredAt returns when this event occurred.
func (e UserPromotedToAdmin) HasOccurredAt() time.Time {
	return e.OccurredAt
}
