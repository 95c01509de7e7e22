package returnbook_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bookwyrmhq/lending-backend-go/core"
	"github.com/bookwyrmhq/lending-backend-go/features/command/returnbook"
)

func Test_Decide_Success_ReturnOnTime_NoFine(t *testing.T) {
	// arrange
	now := time.Now()
	borrow := givenOpenBorrow(5, now.AddDate(0, 0, -10))
	command := returnbook.BuildCommand(givenAdmin(1), borrow.ID, now)

	// act
	assessment, err := returnbook.Decide(command, borrow)

	// assert
	assert.NoError(t, err)
	assert.False(t, assessment.Overdue)
	assert.Zero(t, assessment.Amount)
}

func Test_Decide_Success_ReturnOnDueDate_NoFine(t *testing.T) {
	// arrange - returning on the due date itself is not late
	now := time.Now()
	borrow := givenOpenBorrow(5, now.AddDate(0, 0, -14))
	command := returnbook.BuildCommand(givenAdmin(1), borrow.ID, now)

	// act
	assessment, err := returnbook.Decide(command, borrow)

	// assert
	assert.NoError(t, err)
	assert.False(t, assessment.Overdue)
}

func Test_Decide_Success_LateReturn_AssessesFine(t *testing.T) {
	// arrange - borrowed 17 days ago, so 3 days past the 14-day period
	now := time.Now()
	borrow := givenOpenBorrow(5, now.AddDate(0, 0, -17))
	command := returnbook.BuildCommand(givenAdmin(1), borrow.ID, now)

	// act
	assessment, err := returnbook.Decide(command, borrow)

	// assert
	assert.NoError(t, err)
	assert.True(t, assessment.Overdue)
	assert.Equal(t, 3, assessment.DaysLate)
	assert.Equal(t, 3*core.DefaultDailyFineRate, assessment.Amount)
}

func Test_Decide_Error_WhenActorIsNotAdmin(t *testing.T) {
	// arrange
	now := time.Now()
	borrow := givenOpenBorrow(5, now.AddDate(0, 0, -10))
	command := returnbook.BuildCommand(core.Actor{ID: 7, Role: core.RoleStudent, IsActive: true}, borrow.ID, now)

	// act
	_, err := returnbook.Decide(command, borrow)

	// assert
	assert.ErrorIs(t, err, core.ErrForbidden)
}

func Test_Decide_Error_WhenBorrowAlreadyReturned(t *testing.T) {
	// arrange
	now := time.Now()
	borrow := givenOpenBorrow(5, now.AddDate(0, 0, -10))
	returnDate := now.AddDate(0, 0, -1)
	borrow.IsReturned = true
	borrow.ReturnDate = &returnDate

	command := returnbook.BuildCommand(givenAdmin(1), borrow.ID, now)

	// act
	_, err := returnbook.Decide(command, borrow)

	// assert
	assert.ErrorIs(t, err, core.ErrBorrowAlreadyReturned)
}

func givenAdmin(id core.UserIDInt64) core.Actor {
	return core.Actor{ID: id, Role: core.RoleAdmin, IsActive: true}
}

func givenOpenBorrow(id core.BorrowIDInt64, borrowedAt time.Time) core.Borrow {
	return core.Borrow{
		ID:         id,
		BookID:     10,
		BorrowedBy: 20,
		GivenBy:    1,
		BorrowDate: borrowedAt,
		DueDate:    core.DueDateFrom(borrowedAt),
		IsReturned: false,
	}
}
