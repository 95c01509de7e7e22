package returnbook_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookwyrmhq/lending-backend-go/core"
	"github.com/bookwyrmhq/lending-backend-go/features/command/returnbook"
	"github.com/bookwyrmhq/lending-backend-go/testutil/memorystore"
)

func Test_CommandHandler_Success_OnTimeReturn_NoFine(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memorystore.NewMemoryStore()
	admin := givenAdmin(1)
	now := time.Now()

	borrowerID := store.SeedUser(core.UserAccount{Email: "ada@example.edu", Role: core.RoleStudent, IsActive: true})
	bookID := store.SeedBook(core.Book{
		Title: "T", Author: "A", ISBN: "I-1", OriginalQuantity: 3, CurrentQuantity: 2,
	})
	borrowID := store.SeedBorrow(core.Borrow{
		BookID: bookID, BorrowedBy: borrowerID, GivenBy: admin.ID,
		BorrowDate: now.AddDate(0, 0, -10), DueDate: now.AddDate(0, 0, 4),
	})

	handler := returnbook.NewCommandHandler(store)
	command := returnbook.BuildCommand(admin, borrowID, now)

	// act
	_, err := handler.Handle(ctx, command)

	// assert
	require.NoError(t, err)

	borrow, _ := store.BorrowByID(borrowID)
	assert.False(t, borrow.IsOpen())
	require.NotNil(t, borrow.ReceivedBy)
	assert.Equal(t, admin.ID, *borrow.ReceivedBy)

	book, _ := store.BookByID(bookID)
	assert.Equal(t, 3, book.CurrentQuantity, "copy back on the shelf")

	assert.Empty(t, store.AllFines())
	assert.Empty(t, store.AllNotifications())

	records := store.AuditRecords()
	require.Len(t, records, 1)
	assert.Equal(t, core.BookReturnedEventType, records[0].EventType)
}

func Test_CommandHandler_Success_LateReturn_AssessesFineAndNotifies(t *testing.T) {
	// arrange - 3 days past the due date
	ctx := context.Background()
	store := memorystore.NewMemoryStore()
	admin := givenAdmin(1)
	now := time.Now()

	borrowerID := store.SeedUser(core.UserAccount{Email: "ada@example.edu", Role: core.RoleStudent, IsActive: true})
	bookID := store.SeedBook(core.Book{
		Title: "T", Author: "A", ISBN: "I-1", OriginalQuantity: 3, CurrentQuantity: 2,
	})
	borrowID := store.SeedBorrow(core.Borrow{
		BookID: bookID, BorrowedBy: borrowerID, GivenBy: admin.ID,
		BorrowDate: now.AddDate(0, 0, -17), DueDate: now.AddDate(0, 0, -3),
	})

	handler := returnbook.NewCommandHandler(store)
	command := returnbook.BuildCommand(admin, borrowID, now)

	// act
	_, err := handler.Handle(ctx, command)

	// assert
	require.NoError(t, err)

	fines := store.AllFines()
	require.Len(t, fines, 1)
	assert.Equal(t, borrowID, fines[0].BorrowID)
	assert.Equal(t, 3*core.DefaultDailyFineRate, fines[0].Amount)
	assert.False(t, fines[0].Paid)

	notifications := store.AllNotifications()
	require.Len(t, notifications, 1)
	assert.Equal(t, borrowerID, notifications[0].UserID)
	assert.Equal(t, core.OverdueFinesMessage, notifications[0].Message)
	assert.False(t, notifications[0].IsRead)

	records := store.AuditRecords()
	require.Len(t, records, 2)
	assert.Equal(t, core.BookReturnedEventType, records[0].EventType)
	assert.Equal(t, core.FineAssessedEventType, records[1].EventType)
}

func Test_CommandHandler_Success_LateReturn_SkipsFineWhenSweepAssessedOne(t *testing.T) {
	// arrange - the overdue sweep already created the fine for this borrow
	ctx := context.Background()
	store := memorystore.NewMemoryStore()
	admin := givenAdmin(1)
	now := time.Now()

	borrowerID := store.SeedUser(core.UserAccount{Email: "ada@example.edu", Role: core.RoleStudent, IsActive: true})
	bookID := store.SeedBook(core.Book{
		Title: "T", Author: "A", ISBN: "I-1", OriginalQuantity: 3, CurrentQuantity: 2,
	})
	borrowID := store.SeedBorrow(core.Borrow{
		BookID: bookID, BorrowedBy: borrowerID, GivenBy: admin.ID,
		BorrowDate: now.AddDate(0, 0, -17), DueDate: now.AddDate(0, 0, -3),
	})
	store.SeedFine(core.Fine{BorrowID: borrowID, Amount: 300, DateCreated: now.AddDate(0, 0, -1)})

	handler := returnbook.NewCommandHandler(store)
	command := returnbook.BuildCommand(admin, borrowID, now)

	// act
	_, err := handler.Handle(ctx, command)

	// assert
	require.NoError(t, err)
	assert.Len(t, store.AllFines(), 1, "no second fine for the same borrow")
	assert.Empty(t, store.AllNotifications())
}

func Test_CommandHandler_Error_BorrowNotFound(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memorystore.NewMemoryStore()
	handler := returnbook.NewCommandHandler(store)
	command := returnbook.BuildCommand(givenAdmin(1), 999, time.Now())

	// act
	_, err := handler.Handle(ctx, command)

	// assert
	assert.ErrorIs(t, err, core.ErrBorrowNotFound)
}

func Test_CommandHandler_Error_AlreadyReturned(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memorystore.NewMemoryStore()
	admin := givenAdmin(1)
	now := time.Now()
	returnDate := now.AddDate(0, 0, -1)
	receivedBy := admin.ID

	bookID := store.SeedBook(core.Book{
		Title: "T", Author: "A", ISBN: "I-1", OriginalQuantity: 3, CurrentQuantity: 3,
	})
	borrowID := store.SeedBorrow(core.Borrow{
		BookID: bookID, BorrowedBy: 20, GivenBy: admin.ID,
		BorrowDate: now.AddDate(0, 0, -20), DueDate: now.AddDate(0, 0, -6),
		IsReturned: true, ReturnDate: &returnDate, ReceivedBy: &receivedBy,
	})

	handler := returnbook.NewCommandHandler(store)
	command := returnbook.BuildCommand(admin, borrowID, now)

	// act
	_, err := handler.Handle(ctx, command)

	// assert
	assert.ErrorIs(t, err, core.ErrBorrowAlreadyReturned)
	book, _ := store.BookByID(bookID)
	assert.Equal(t, 3, book.CurrentQuantity, "stock untouched")
}
