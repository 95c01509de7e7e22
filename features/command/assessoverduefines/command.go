package assessoverduefines

import (
	"time"

	"github.com/bookwyrmhq/lending-backend-go/core"
)

const (
	commandType = "AssessOverdueFines"
)

// Command represents the intent to sweep all open overdue borrows and assess
// a fine for each one that has none yet.
type Command struct {
	Actor core.Actor
	AsOf  core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(actor core.Actor, asOf time.Time) Command {
	return Command{
		Actor: actor,
		AsOf:  core.ToOccurredAt(asOf),
	}
}
