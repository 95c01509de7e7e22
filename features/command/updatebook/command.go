package updatebook

import (
	"time"

	"github.com/bookwyrmhq/lending-backend-go/core"
)

const (
	commandType = "UpdateBook"
)

// Command represents the intent to amend a catalog entry. Changes carries the
// fields to update; nil fields stay unchanged.
type Command struct {
	Actor      core.Actor
	BookID     core.BookIDInt64
	Changes    core.BookChanges
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	actor core.Actor,
	bookID core.BookIDInt64,
	changes core.BookChanges,
	occurredAt time.Time,
) Command {
	return Command{
		Actor:      actor,
		BookID:     bookID,
		Changes:    changes,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
