package registeruser

import (
	"github.com/bookwyrmhq/lending-backend-go/core"
)

// Decide implements the business logic that validates a registration and
// shapes the account to store. This is a pure function with no side effects -
// password hashing is done by the handler and the hash is passed in.
//
// Business Rules:
//
//	GIVEN: Registration data for a new account
//	WHEN: RegisterUser command is received
//	THEN: An active account is created with the requested self-service role
//	ERROR: "missing required field" if email, name or password is empty
//	ERROR: "invalid role" for anything but student or external
func Decide(command Command, passwordHash string) (core.UserAccount, error) {
	if command.Email == "" || command.FirstName == "" || command.LastName == "" || command.Password == "" {
		return core.UserAccount{}, core.ErrMissingRequiredField
	}

	role, err := core.ParseSelfServiceRole(command.Role)
	if err != nil {
		return core.UserAccount{}, err
	}

	return core.UserAccount{
		Email:        command.Email,
		FirstName:    command.FirstName,
		LastName:     command.LastName,
		PasswordHash: passwordHash,
		IsActive:     true,
		Role:         role,
	}, nil
}
