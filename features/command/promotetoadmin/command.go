package promotetoadmin

import (
	"time"

	"github.com/bookwyrmhq/lending-backend-go/core"
)

const (
	commandType = "PromoteToAdmin"
)

// Command represents the intent to grant the admin role to an existing account.
type Command struct {
	Actor      core.Actor
	Email      string
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(actor core.Actor, email string, occurredAt time.Time) Command {
	return Command{
		Actor:      actor,
		Email:      email,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
