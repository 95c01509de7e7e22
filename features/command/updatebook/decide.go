package updatebook

import (
	"github.com/bookwyrmhq/lending-backend-go/core"
)

// Decide implements the business logic that validates a catalog amendment.
// This is a pure function with no side effects.
//
// Business Rules:
//
//	GIVEN: A catalog entry with BookID and a set of changed fields
//	WHEN: UpdateBook command is received
//	THEN: The set fields replace the entry's values; quantity replaces the
//	      current quantity only (a stock correction)
//	ERROR: "actor does not have the required capability" unless the actor is an admin
//	ERROR: "no fields to update" if no field is set
//	ERROR: "missing required field" if a set text field is empty, or the
//	       quantity is negative
func Decide(command Command) (core.BookChanges, error) {
	if err := core.RequireAdmin(command.Actor); err != nil {
		return core.BookChanges{}, err
	}

	changes := command.Changes

	if changes.IsEmpty() {
		return core.BookChanges{}, core.ErrNoFieldsToUpdate
	}

	emptyText := (changes.Title != nil && *changes.Title == "") ||
		(changes.Author != nil && *changes.Author == "") ||
		(changes.ISBN != nil && *changes.ISBN == "")
	if emptyText || (changes.Quantity != nil && *changes.Quantity < 0) {
		return core.BookChanges{}, core.ErrMissingRequiredField
	}

	return changes, nil
}
