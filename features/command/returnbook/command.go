package returnbook

import (
	"time"

	"github.com/bookwyrmhq/lending-backend-go/core"
)

const (
	commandType = "ReturnBook"
)

// Command represents the intent to take a borrowed book back.
type Command struct {
	Actor      core.Actor
	BorrowID   core.BorrowIDInt64
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(actor core.Actor, borrowID core.BorrowIDInt64, occurredAt time.Time) Command {
	return Command{
		Actor:      actor,
		BorrowID:   borrowID,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
