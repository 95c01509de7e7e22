package addcategory

import (
	"time"

	"github.com/bookwyrmhq/lending-backend-go/core"
)

const (
	commandType = "AddCategory"
)

// Command represents the intent to add a new book category.
type Command struct {
	Actor      core.Actor
	Name       string
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(actor core.Actor, name string, occurredAt time.Time) Command {
	return Command{
		Actor:      actor,
		Name:       name,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
