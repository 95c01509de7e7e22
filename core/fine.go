package core

import (
	"time"
)

// Fine is a monetary penalty for returning a book past its due date.
// There is exactly one fine per borrow (BorrowID is unique in the store).
// A fine is immutable except for the payment fields, which are set exactly once.
type Fine struct {
	ID            FineIDInt64
	BorrowID      BorrowIDInt64
	Amount        float64
	Paid          bool
	DateCreated   time.Time
	DatePaid      *time.Time
	PaymentMethod *PaymentMethod
	TransactionID *string
	CollectedBy   *UserIDInt64
}
