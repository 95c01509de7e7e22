package core

import (
	"time"
)

// Borrow is a single loan record linking a book copy to a borrower for a
// bounded period.
//
// Lifecycle: created OPEN (IsReturned=false), mutated exactly once at return
// time (IsReturned=true, ReturnDate and ReceivedBy set), immutable thereafter.
type Borrow struct {
	ID         BorrowIDInt64
	BookID     BookIDInt64
	BorrowedBy UserIDInt64
	GivenBy    UserIDInt64
	ReceivedBy *UserIDInt64
	BorrowDate time.Time
	DueDate    time.Time
	ReturnDate *time.Time
	IsReturned bool
	Comments   string
}

// IsOpen reports whether the borrow is still awaiting a return.
func (b Borrow) IsOpen() bool {
	return !b.IsReturned
}
