package core

import (
	"time"
)

// LoanPeriodDays is the fixed lending period.
const LoanPeriodDays = 14

// DueDateFrom computes the due date for a loan given its reference date.
// The reference defaults to "now" at the call sites; fine assessment passes
// historical borrow dates through here as well.
func DueDateFrom(reference time.Time) time.Time {
	return reference.AddDate(0, 0, LoanPeriodDays)
}
