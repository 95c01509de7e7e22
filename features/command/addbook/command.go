package addbook

import (
	"time"

	"github.com/bookwyrmhq/lending-backend-go/core"
)

const (
	commandType = "AddBook"
)

// Command represents the intent to add a new book to the catalog.
type Command struct {
	Actor      core.Actor
	Title      string
	Author     string
	ISBN       string
	CategoryID int64
	Quantity   int
	Location   string
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	actor core.Actor,
	title string,
	author string,
	isbn string,
	categoryID int64,
	quantity int,
	location string,
	occurredAt time.Time,
) Command {
	return Command{
		Actor:      actor,
		Title:      title,
		Author:     author,
		ISBN:       isbn,
		CategoryID: categoryID,
		Quantity:   quantity,
		Location:   location,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
