package registeruser

import (
	"time"

	"github.com/bookwyrmhq/lending-backend-go/core"
)

const (
	commandType = "RegisterUser"
)

// Command represents the intent to register a new account.
// Role is carried raw and validated by Decide; admin accounts are never
// created through registration.
type Command struct {
	Email      string
	FirstName  string
	LastName   string
	Password   string
	Role       string
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(email, firstName, lastName, password, role string, occurredAt time.Time) Command {
	return Command{
		Email:      email,
		FirstName:  firstName,
		LastName:   lastName,
		Password:   password,
		Role:       role,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
