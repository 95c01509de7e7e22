package unreadnotifications

import (
	"github.com/bookwyrmhq/lending-backend-go/core"
)

// UserNotifications is the result of the unread notifications query.
type UserNotifications struct {
	UserID        core.UserIDInt64
	Notifications []core.Notification
	Count         int
}
