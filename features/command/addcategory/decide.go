package addcategory

import (
	"github.com/bookwyrmhq/lending-backend-go/core"
)

// Decide implements the business logic that validates a new category.
// This is a pure function with no side effects.
//
// Business Rules:
//
//	GIVEN: A category name
//	WHEN: AddCategory command is received
//	THEN: The category enters the catalog
//	ERROR: "actor does not have the required capability" unless the actor is an admin
//	ERROR: "missing required field" if the name is empty
func Decide(command Command) (core.Category, error) {
	if err := core.RequireAdmin(command.Actor); err != nil {
		return core.Category{}, err
	}

	if command.Name == "" {
		return core.Category{}, core.ErrMissingRequiredField
	}

	return core.Category{
		Name:    command.Name,
		AddedBy: command.Actor.ID,
	}, nil
}
