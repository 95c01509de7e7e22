package collectedfinesreport_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookwyrmhq/lending-backend-go/core"
	"github.com/bookwyrmhq/lending-backend-go/features/query/collectedfinesreport"
	"github.com/bookwyrmhq/lending-backend-go/lendingstore"
	"github.com/bookwyrmhq/lending-backend-go/testutil/memorystore"
)

func Test_QueryHandler_ListsOnlyPaidFines(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memorystore.NewMemoryStore()
	now := time.Now()

	studentID, externalID, bookID := seedUsersAndBook(store)

	seedPaidFine(store, bookID, studentID, 500, now.AddDate(0, 0, -3))
	seedPaidFine(store, bookID, externalID, 300, now.AddDate(0, 0, -1))
	seedUnpaidFine(store, bookID, studentID, 900, now)

	handler := collectedfinesreport.NewQueryHandler(store)
	admin := core.Actor{ID: 1, Role: core.RoleAdmin, IsActive: true}
	query := collectedfinesreport.BuildQuery(admin, "", lendingstore.SortDesc, lendingstore.SortNone)

	// act
	report, err := handler.Handle(ctx, query)

	// assert
	require.NoError(t, err)
	assert.Equal(t, 2, report.Count)
	require.Len(t, report.Rows, 2)
	assert.Equal(t, float64(300), report.Rows[0].Fine.Amount, "most recently paid first with descending sort")
	assert.Equal(t, float64(500), report.Rows[1].Fine.Amount)
	assert.Equal(t, externalID, report.Rows[0].BorrowedBy)
	assert.Equal(t, core.RoleExternal, report.Rows[0].BorrowerRole)
}

func Test_QueryHandler_FiltersByRole(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memorystore.NewMemoryStore()
	now := time.Now()

	studentID, externalID, bookID := seedUsersAndBook(store)
	seedPaidFine(store, bookID, studentID, 500, now.AddDate(0, 0, -3))
	seedPaidFine(store, bookID, externalID, 300, now.AddDate(0, 0, -1))

	handler := collectedfinesreport.NewQueryHandler(store)
	admin := core.Actor{ID: 1, Role: core.RoleAdmin, IsActive: true}
	query := collectedfinesreport.BuildQuery(admin, core.RoleExternal, lendingstore.SortNone, lendingstore.SortNone)

	// act
	report, err := handler.Handle(ctx, query)

	// assert
	require.NoError(t, err)
	require.Equal(t, 1, report.Count)
	assert.Equal(t, core.RoleExternal, report.Rows[0].BorrowerRole)
}

func Test_QueryHandler_NonAdminIsForbidden(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memorystore.NewMemoryStore()
	handler := collectedfinesreport.NewQueryHandler(store)
	external := core.Actor{ID: 7, Role: core.RoleExternal, IsActive: true}

	// act
	_, err := handler.Handle(ctx, collectedfinesreport.BuildQuery(
		external, "", lendingstore.SortNone, lendingstore.SortNone))

	// assert
	assert.ErrorIs(t, err, core.ErrForbidden)
}

func seedUsersAndBook(store *memorystore.MemoryStore) (core.UserIDInt64, core.UserIDInt64, core.BookIDInt64) {
	studentID := store.SeedUser(core.UserAccount{Email: "a@example.edu", Role: core.RoleStudent, IsActive: true})
	externalID := store.SeedUser(core.UserAccount{Email: "b@example.com", Role: core.RoleExternal, IsActive: true})
	bookID := store.SeedBook(core.Book{Title: "T", Author: "A", ISBN: "I", OriginalQuantity: 6, CurrentQuantity: 2})

	return studentID, externalID, bookID
}

func seedPaidFine(
	store *memorystore.MemoryStore,
	bookID core.BookIDInt64,
	borrowerID core.UserIDInt64,
	amount float64,
	paidAt time.Time,
) {
	borrowID := store.SeedBorrow(core.Borrow{
		BookID: bookID, BorrowedBy: borrowerID, GivenBy: 1,
		BorrowDate: paidAt.AddDate(0, 0, -20), DueDate: paidAt.AddDate(0, 0, -6),
	})

	method := core.PaymentMethodCash
	collectedBy := core.UserIDInt64(1)
	store.SeedFine(core.Fine{
		BorrowID: borrowID, Amount: amount, Paid: true,
		DateCreated: paidAt.AddDate(0, 0, -5), DatePaid: &paidAt,
		PaymentMethod: &method, CollectedBy: &collectedBy,
	})
}

func seedUnpaidFine(
	store *memorystore.MemoryStore,
	bookID core.BookIDInt64,
	borrowerID core.UserIDInt64,
	amount float64,
	now time.Time,
) {
	borrowID := store.SeedBorrow(core.Borrow{
		BookID: bookID, BorrowedBy: borrowerID, GivenBy: 1,
		BorrowDate: now.AddDate(0, 0, -20), DueDate: now.AddDate(0, 0, -6),
	})
	store.SeedFine(core.Fine{
		BorrowID: borrowID, Amount: amount, Paid: false, DateCreated: now.AddDate(0, 0, -5),
	})
}
