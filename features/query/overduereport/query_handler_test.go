package overduereport_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookwyrmhq/lending-backend-go/core"
	"github.com/bookwyrmhq/lending-backend-go/features/query/overduereport"
	"github.com/bookwyrmhq/lending-backend-go/lendingstore"
	"github.com/bookwyrmhq/lending-backend-go/testutil/memorystore"
)

func Test_QueryHandler_ListsOpenOverdueBorrows(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memorystore.NewMemoryStore()
	now := time.Now()

	studentID := store.SeedUser(core.UserAccount{Email: "a@example.edu", Role: core.RoleStudent, IsActive: true})
	externalID := store.SeedUser(core.UserAccount{Email: "b@example.com", Role: core.RoleExternal, IsActive: true})
	bookID := store.SeedBook(core.Book{Title: "T", Author: "A", ISBN: "I", OriginalQuantity: 6, CurrentQuantity: 2})

	seedOpenBorrow(store, bookID, studentID, now.AddDate(0, 0, -3))
	seedOpenBorrow(store, bookID, externalID, now.AddDate(0, 0, -7))
	seedOpenBorrow(store, bookID, studentID, now.AddDate(0, 0, 4)) // not due yet

	returned := seedOpenBorrow(store, bookID, externalID, now.AddDate(0, 0, -10))
	markReturned(store, returned, now)

	handler := overduereport.NewQueryHandler(store)
	admin := core.Actor{ID: 1, Role: core.RoleAdmin, IsActive: true}
	query := overduereport.BuildQuery(admin, now, "", lendingstore.SortAsc)

	// act
	report, err := handler.Handle(ctx, query)

	// assert
	require.NoError(t, err)
	assert.Equal(t, 2, report.Count)
	require.Len(t, report.Rows, 2)
	assert.Equal(t, core.RoleExternal, report.Rows[0].BorrowerRole, "longest overdue first with ascending sort")
	assert.Equal(t, core.RoleStudent, report.Rows[1].BorrowerRole)
}

func Test_QueryHandler_FiltersByRole(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memorystore.NewMemoryStore()
	now := time.Now()

	studentID := store.SeedUser(core.UserAccount{Email: "a@example.edu", Role: core.RoleStudent, IsActive: true})
	externalID := store.SeedUser(core.UserAccount{Email: "b@example.com", Role: core.RoleExternal, IsActive: true})
	bookID := store.SeedBook(core.Book{Title: "T", Author: "A", ISBN: "I", OriginalQuantity: 6, CurrentQuantity: 2})

	seedOpenBorrow(store, bookID, studentID, now.AddDate(0, 0, -3))
	seedOpenBorrow(store, bookID, externalID, now.AddDate(0, 0, -7))

	handler := overduereport.NewQueryHandler(store)
	admin := core.Actor{ID: 1, Role: core.RoleAdmin, IsActive: true}
	query := overduereport.BuildQuery(admin, now, core.RoleStudent, lendingstore.SortNone)

	// act
	report, err := handler.Handle(ctx, query)

	// assert
	require.NoError(t, err)
	require.Equal(t, 1, report.Count)
	assert.Equal(t, core.RoleStudent, report.Rows[0].BorrowerRole)
}

func Test_QueryHandler_BorrowDueTodayIsNotInTheReport(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memorystore.NewMemoryStore()
	now := time.Now()

	studentID := store.SeedUser(core.UserAccount{Email: "a@example.edu", Role: core.RoleStudent, IsActive: true})
	bookID := store.SeedBook(core.Book{Title: "T", Author: "A", ISBN: "I", OriginalQuantity: 6, CurrentQuantity: 2})
	seedOpenBorrow(store, bookID, studentID, now)

	handler := overduereport.NewQueryHandler(store)
	admin := core.Actor{ID: 1, Role: core.RoleAdmin, IsActive: true}

	// act
	report, err := handler.Handle(ctx, overduereport.BuildQuery(admin, now, "", lendingstore.SortNone))

	// assert
	require.NoError(t, err)
	assert.Zero(t, report.Count)
}

func Test_QueryHandler_NonAdminIsForbidden(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memorystore.NewMemoryStore()
	handler := overduereport.NewQueryHandler(store)
	student := core.Actor{ID: 7, Role: core.RoleStudent, IsActive: true}

	// act
	_, err := handler.Handle(ctx, overduereport.BuildQuery(student, time.Now(), "", lendingstore.SortNone))

	// assert
	assert.ErrorIs(t, err, core.ErrForbidden)
}

func seedOpenBorrow(
	store *memorystore.MemoryStore,
	bookID core.BookIDInt64,
	borrowerID core.UserIDInt64,
	dueDate time.Time,
) core.BorrowIDInt64 {
	return store.SeedBorrow(core.Borrow{
		BookID:     bookID,
		BorrowedBy: borrowerID,
		GivenBy:    1,
		BorrowDate: dueDate.AddDate(0, 0, -core.LoanPeriodDays),
		DueDate:    dueDate,
		IsReturned: false,
	})
}

func markReturned(store *memorystore.MemoryStore, borrowID core.BorrowIDInt64, at time.Time) {
	borrow, _ := store.BorrowByID(borrowID)
	receivedBy := core.UserIDInt64(1)
	borrow.IsReturned = true
	borrow.ReturnDate = &at
	borrow.ReceivedBy = &receivedBy
	store.SeedBorrow(borrow)
}
