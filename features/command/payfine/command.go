package payfine

import (
	"time"

	"github.com/bookwyrmhq/lending-backend-go/core"
)

const (
	commandType = "PayFine"
)

// Command represents the intent to settle an unpaid fine.
// Method is carried raw and validated by Decide, so a bad value surfaces as
// a business error instead of a constructor failure.
type Command struct {
	Actor      core.Actor
	FineID     core.FineIDInt64
	Method     string
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(actor core.Actor, fineID core.FineIDInt64, method string, occurredAt time.Time) Command {
	return Command{
		Actor:      actor,
		FineID:     fineID,
		Method:     method,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
