package assessoverduefines

import (
	"github.com/bookwyrmhq/lending-backend-go/core"
)

// Decide implements the business logic of the overdue sweep for one borrow.
// This is a pure function with no side effects.
//
// Business Rules:
//
//	GIVEN: An OPEN borrow without a fine
//	WHEN: AssessOverdueFines command is received
//	THEN: A fine of daysLate * daily rate is assessed when the due date is
//	      strictly before the sweep date (date-only comparison)
//	IDEMPOTENCY: Borrows that are not overdue yield no assessment
func Decide(command Command, borrow core.Borrow) core.FineAssessment {
	return core.AssessOverdue(borrow.DueDate, command.AsOf, core.DefaultDailyFineRate)
}
