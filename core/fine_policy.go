package core

import (
	"time"
)

// DailyFineRate is the fine charged per full day a borrow is overdue.
type DailyFineRate = float64

// DefaultDailyFineRate is the configured daily rate.
const DefaultDailyFineRate DailyFineRate = 100

// FineAssessment is the outcome of an overdue check.
type FineAssessment struct {
	Overdue  bool
	DaysLate int
	Amount   float64
}

// AssessOverdue compares asOf to dueDate with date-only granularity
// (time of day is ignored) and computes the fine for a late return.
// A borrow is overdue only when the due date strictly precedes asOf,
// i.e. it is late by at least one full day.
func AssessOverdue(dueDate time.Time, asOf time.Time, rate DailyFineRate) FineAssessment {
	due := truncateToDate(dueDate)
	ref := truncateToDate(asOf)

	if !due.Before(ref) {
		return FineAssessment{}
	}

	daysLate := int(ref.Sub(due).Hours() / 24)

	return FineAssessment{
		Overdue:  true,
		DaysLate: daysLate,
		Amount:   float64(daysLate) * rate,
	}
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
