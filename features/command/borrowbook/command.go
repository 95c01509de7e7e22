package borrowbook

import (
	"time"

	"github.com/bookwyrmhq/lending-backend-go/core"
)

const (
	commandType = "BorrowBook"
)

// Command represents the intent to lend a book to a borrower.
// It encapsulates all the necessary information required to execute the borrow book use case.
type Command struct {
	Actor      core.Actor
	BookID     core.BookIDInt64
	BorrowerID core.UserIDInt64
	Comments   string
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
	borrowerID core.UserIDInt64,
	comments string,
	occurredAt time.Time,
) Command {
	return Command{
		Actor:      actor,
		BookID:     bookID,
		BorrowerID: borrowerID,
		Comments:   comments,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
