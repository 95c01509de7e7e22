package promotetoadmin

import (
	"github.com/bookwyrmhq/lending-backend-go/core"
)

// Decide implements the business logic that authorizes a promotion.
// This is a pure function with no side effects.
//
// Business Rules:
//
//	GIVEN: An account registered under Email
//	WHEN: PromoteToAdmin command is received
//	THEN: The account's role becomes admin
//	ERROR: "actor does not have the required capability" unless the actor is an admin
//	ERROR: "missing required field" if the email is empty
func Decide(command Command) error {
	if err := core.RequireAdmin(command.Actor); err != nil {
		return err
	}

	if command.Email == "" {
		return core.ErrMissingRequiredField
	}

	return nil
}
