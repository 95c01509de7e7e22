package returnbook

import (
	"github.com/bookwyrmhq/lending-backend-go/core"
)

// Decide implements the business logic to determine whether a borrow can be
// closed, and what fine (if any) the late return incurs. This is a pure
// function with no side effects.
//
// Business Rules:
//
//	GIVEN: An OPEN borrow with BorrowID
//	WHEN: ReturnBook command is received
//	THEN: The borrow is closed (return date, received by) and the copy goes
//	      back on the shelf; a late return is assessed a fine of
//	      daysLate * daily rate, compared with date-only granularity
//	ERROR: "actor does not have the required capability" unless the actor is an admin
//	ERROR: "book already returned" if the borrow is not open
func Decide(command Command, borrow core.Borrow) (core.FineAssessment, error) {
	if err := core.RequireAdmin(command.Actor); err != nil {
		return core.FineAssessment{}, err
	}

	if !borrow.IsOpen() {
		return core.FineAssessment{}, core.ErrBorrowAlreadyReturned
	}

	return core.AssessOverdue(borrow.DueDate, command.OccurredAt, core.DefaultDailyFineRate), nil
}
