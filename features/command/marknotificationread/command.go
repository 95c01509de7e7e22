package marknotificationread

import (
	"time"

	"github.com/bookwyrmhq/lending-backend-go/core"
)

const (
	commandType = "MarkNotificationRead"
)

// Command represents the intent of a user to acknowledge one of their notifications.
type Command struct {
	Actor          core.Actor
	NotificationID int64
	OccurredAt     core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(actor core.Actor, notificationID int64, occurredAt time.Time) Command {
	return Command{
		Actor:          actor,
		NotificationID: notificationID,
		OccurredAt:     core.ToOccurredAt(occurredAt),
	}
}
