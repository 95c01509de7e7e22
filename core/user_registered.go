package core

import (
	"time"
)

// UserRegisteredEventType is the event type identifier.
const UserRegisteredEventType = "UserRegistered"

// UserRegistered represents when a new account joined the registry.
type UserRegistered struct {
	EventType  string
	UserID     UserIDInt64
	Email      string
	Role       Role
	OccurredAt OccurredAtTS
}

// BuildUserRegistered creates a new UserRegistered event.
func BuildUserRegistered(user UserAccount, occurredAt time.Time) UserRegistered {
	return UserRegistered{
		EventType:  UserRegisteredEventType,
		UserID:     user.ID,
		Email:      user.Email,
		Role:       user.Role,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e UserRegistered) IsEventType() string {
	return UserRegisteredEventType
}

// HasOccurredAt returns when this event occurred.
func (e UserRegistered) HasOccurredAt() time.Time {
	return e.OccurredAt
}
