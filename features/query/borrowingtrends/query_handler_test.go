package borrowingtrends_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookwyrmhq/lending-backend-go/core"
	"github.com/bookwyrmhq/lending-backend-go/features/query/borrowingtrends"
	"github.com/bookwyrmhq/lending-backend-go/lendingstore"
	"github.com/bookwyrmhq/lending-backend-go/testutil/memorystore"
)

func Test_QueryHandler_ListsAllBorrowsWithoutFilters(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memorystore.NewMemoryStore()
	now := time.Now()

	studentID := store.SeedUser(core.UserAccount{Email: "a@example.edu", Role: core.RoleStudent, IsActive: true})
	bookID := store.SeedBook(core.Book{Title: "T", Author: "A", ISBN: "I", OriginalQuantity: 6, CurrentQuantity: 4})

	seedBorrowOn(store, bookID, studentID, now.AddDate(0, 0, -30))
	seedBorrowOn(store, bookID, studentID, now.AddDate(0, 0, -1))

	handler := borrowingtrends.NewQueryHandler(store)
	admin := core.Actor{ID: 1, Role: core.RoleAdmin, IsActive: true}
	query := borrowingtrends.BuildQuery(admin, now, "", lendingstore.TimeWindowNone, 0)

	// act
	report, err := handler.Handle(ctx, query)

	// assert
	require.NoError(t, err)
	assert.Equal(t, 2, report.Count)
	require.Len(t, report.Rows, 2)
	assert.True(t, report.Rows[0].BorrowDate.Before(report.Rows[1].BorrowDate), "oldest borrow first")
}

func Test_QueryHandler_FiltersByRole(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memorystore.NewMemoryStore()
	now := time.Now()

	studentID := store.SeedUser(core.UserAccount{Email: "a@example.edu", Role: core.RoleStudent, IsActive: true})
	externalID := store.SeedUser(core.UserAccount{Email: "b@example.com", Role: core.RoleExternal, IsActive: true})
	bookID := store.SeedBook(core.Book{Title: "T", Author: "A", ISBN: "I", OriginalQuantity: 6, CurrentQuantity: 4})

	seedBorrowOn(store, bookID, studentID, now.AddDate(0, 0, -2))
	externalBorrowID := seedBorrowOn(store, bookID, externalID, now.AddDate(0, 0, -1))

	handler := borrowingtrends.NewQueryHandler(store)
	admin := core.Actor{ID: 1, Role: core.RoleAdmin, IsActive: true}
	query := borrowingtrends.BuildQuery(admin, now, core.RoleExternal, lendingstore.TimeWindowNone, 0)

	// act
	report, err := handler.Handle(ctx, query)

	// assert
	require.NoError(t, err)
	require.Equal(t, 1, report.Count)
	assert.Equal(t, externalBorrowID, report.Rows[0].ID)
}

func Test_QueryHandler_FiltersByCategory(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memorystore.NewMemoryStore()
	now := time.Now()

	studentID := store.SeedUser(core.UserAccount{Email: "a@example.edu", Role: core.RoleStudent, IsActive: true})
	novelsBookID := store.SeedBook(core.Book{Title: "N", Author: "A", ISBN: "I-1", CategoryID: 100, OriginalQuantity: 2, CurrentQuantity: 1})
	poetryBookID := store.SeedBook(core.Book{Title: "P", Author: "A", ISBN: "I-2", CategoryID: 200, OriginalQuantity: 2, CurrentQuantity: 1})

	novelBorrowID := seedBorrowOn(store, novelsBookID, studentID, now.AddDate(0, 0, -2))
	seedBorrowOn(store, poetryBookID, studentID, now.AddDate(0, 0, -1))

	handler := borrowingtrends.NewQueryHandler(store)
	admin := core.Actor{ID: 1, Role: core.RoleAdmin, IsActive: true}
	query := borrowingtrends.BuildQuery(admin, now, "", lendingstore.TimeWindowNone, 100)

	// act
	report, err := handler.Handle(ctx, query)

	// assert
	require.NoError(t, err)
	require.Equal(t, 1, report.Count)
	assert.Equal(t, novelBorrowID, report.Rows[0].ID)
}

func Test_QueryHandler_YearWindowExcludesEarlierYears(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memorystore.NewMemoryStore()
	asOf := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

	studentID := store.SeedUser(core.UserAccount{Email: "a@example.edu", Role: core.RoleStudent, IsActive: true})
	bookID := store.SeedBook(core.Book{Title: "T", Author: "A", ISBN: "I", OriginalQuantity: 6, CurrentQuantity: 4})

	thisYearBorrowID := seedBorrowOn(store, bookID, studentID, asOf.AddDate(0, -2, 0))
	seedBorrowOn(store, bookID, studentID, asOf.AddDate(-1, 0, 0))

	handler := borrowingtrends.NewQueryHandler(store)
	admin := core.Actor{ID: 1, Role: core.RoleAdmin, IsActive: true}
	query := borrowingtrends.BuildQuery(admin, asOf, "", lendingstore.TimeWindowYear, 0)

	// act
	report, err := handler.Handle(ctx, query)

	// assert
	require.NoError(t, err)
	require.Equal(t, 1, report.Count)
	assert.Equal(t, thisYearBorrowID, report.Rows[0].ID)
}

func Test_QueryHandler_Error_NonAdminIsForbidden(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memorystore.NewMemoryStore()
	handler := borrowingtrends.NewQueryHandler(store)
	student := core.Actor{ID: 7, Role: core.RoleStudent, IsActive: true}
	query := borrowingtrends.BuildQuery(student, time.Now(), "", lendingstore.TimeWindowNone, 0)

	// act
	_, err := handler.Handle(ctx, query)

	// assert
	assert.ErrorIs(t, err, core.ErrForbidden)
}

func seedBorrowOn(
	store *memorystore.MemoryStore,
	bookID core.BookIDInt64,
	borrowerID core.UserIDInt64,
	borrowDate time.Time,
) core.BorrowIDInt64 {
	return store.SeedBorrow(core.Borrow{
		BookID:     bookID,
		BorrowedBy: borrowerID,
		GivenBy:    1,
		BorrowDate: borrowDate,
		DueDate:    core.DueDateFrom(borrowDate),
	})
}
