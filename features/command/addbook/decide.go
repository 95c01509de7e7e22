package addbook

import (
	"github.com/bookwyrmhq/lending-backend-go/core"
)

// Decide implements the business logic that validates a new catalog entry.
// This is a pure function with no side effects.
//
// Business Rules:
//
//	GIVEN: Catalog data for a new book
//	WHEN: AddBook command is received
//	THEN: The book enters the catalog with all copies on the shelf
//	      (current quantity = original quantity)
//	ERROR: "actor does not have the required capability" unless the actor is an admin
//	ERROR: "missing required field" if title, author or ISBN is empty, or the
//	       quantity is not positive
func Decide(command Command) (core.Book, error) {
	if err := core.RequireAdmin(command.Actor); err != nil {
		return core.Book{}, err
	}

	if command.Title == "" || command.Author == "" || command.ISBN == "" || command.Quantity <= 0 {
		return core.Book{}, core.ErrMissingRequiredField
	}

	return core.Book{
		Title:            command.Title,
		Author:           command.Author,
		ISBN:             command.ISBN,
		CategoryID:       command.CategoryID,
		OriginalQuantity: command.Quantity,
		CurrentQuantity:  command.Quantity,
		Location:         command.Location,
		AddedBy:          command.Actor.ID,
		DateAdded:        command.OccurredAt,
	}, nil
}
