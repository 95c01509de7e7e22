package borrowbook

import (
	"github.com/bookwyrmhq/lending-backend-go/core"
)

const maxOpenBorrowsPerUser = 5

// Decide implements the business logic to determine whether a book should be
// lent to a borrower. This is a pure function with no side effects - it takes
// the locked state snapshot and a command and returns the borrow to insert.
//
// Business Rules:
//
//	GIVEN: A book with BookID and a borrower with BorrowerID
//	WHEN: BorrowBook command is received
//	THEN: A new OPEN Borrow is created with due date = borrow date + 14 days
//	ERROR: "actor does not have the required capability" unless the actor is an admin
//	ERROR: "borrower has reached the maximum limit of borrowed books" at 5 open borrows
//	ERROR: "book is out of stock or is borrowed" if no copy is on the shelf
func Decide(command Command, book core.Book, openBorrowCount int) (core.Borrow, error) {
	if err := core.RequireAdmin(command.Actor); err != nil {
		return core.Borrow{}, err
	}

	if openBorrowCount >= maxOpenBorrowsPerUser {
		return core.Borrow{}, core.ErrBorrowLimitExceeded
	}

	if !book.IsAvailable() {
		return core.Borrow{}, core.ErrBookUnavailable
	}

	return core.Borrow{
		BookID:     book.ID,
		BorrowedBy: command.BorrowerID,
		GivenBy:    command.Actor.ID,
		BorrowDate: command.OccurredAt,
		DueDate:    core.DueDateFrom(command.OccurredAt),
		IsReturned: false,
		Comments:   command.Comments,
	}, nil
}
