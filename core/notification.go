package core

import (
	"time"
)

// OverdueFinesMessage is the message sent to a borrower when a fine is assessed.
const OverdueFinesMessage = "You have overdue fines"

// Notification is a message for a user, delivered in-app.
type Notification struct {
	ID       int64
	UserID   UserIDInt64
	Message  string
	SentDate time.Time
	IsRead   bool
}

// BuildOverdueFinesNotification creates the notification emitted when a fine
// is assessed for an overdue borrow.
func BuildOverdueFinesNotification(userID UserIDInt64, sentAt time.Time) Notification {
	return Notification{
		UserID:   userID,
		Message:  OverdueFinesMessage,
		SentDate: sentAt,
		IsRead:   false,
	}
}
