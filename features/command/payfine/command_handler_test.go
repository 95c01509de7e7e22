package payfine_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookwyrmhq/lending-backend-go/core"
	"github.com/bookwyrmhq/lending-backend-go/features/command/payfine"
	"github.com/bookwyrmhq/lending-backend-go/testutil/memorystore"
)

func Test_CommandHandler_Success_CashPayment(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memorystore.NewMemoryStore()
	admin := givenAdmin(1)
	now := time.Now()

	_, fineID := seedUnpaidFine(store, now)

	handler := payfine.NewCommandHandler(store)
	command := payfine.BuildCommand(admin, fineID, "cash", now)

	// act
	_, err := handler.Handle(ctx, command)

	// assert
	require.NoError(t, err)

	fine, _ := store.FineByID(fineID)
	assert.True(t, fine.Paid)
	require.NotNil(t, fine.PaymentMethod)
	assert.Equal(t, core.PaymentMethodCash, *fine.PaymentMethod)
	assert.Nil(t, fine.TransactionID)
	require.NotNil(t, fine.CollectedBy)
	assert.Equal(t, admin.ID, *fine.CollectedBy)

	records := store.AuditRecords()
	require.Len(t, records, 1)
	assert.Equal(t, core.FinePaidEventType, records[0].EventType)
}

func Test_CommandHandler_Success_OnlinePaymentByBorrower(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memorystore.NewMemoryStore()
	now := time.Now()

	borrowerID, fineID := seedUnpaidFine(store, now)
	borrower := core.Actor{ID: borrowerID, Role: core.RoleStudent, IsActive: true}

	handler := payfine.NewCommandHandler(store)
	command := payfine.BuildCommand(borrower, fineID, "paypal", now)

	// act
	_, err := handler.Handle(ctx, command)

	// assert
	require.NoError(t, err)

	fine, _ := store.FineByID(fineID)
	assert.True(t, fine.Paid)
	require.NotNil(t, fine.TransactionID)
	assert.Len(t, *fine.TransactionID, 32, "uuid without dashes")
	assert.Nil(t, fine.CollectedBy)
}

func Test_CommandHandler_Error_FineNotFound(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memorystore.NewMemoryStore()
	handler := payfine.NewCommandHandler(store)
	command := payfine.BuildCommand(givenAdmin(1), 999, "cash", time.Now())

	// act
	_, err := handler.Handle(ctx, command)

	// assert
	assert.ErrorIs(t, err, core.ErrFineNotFound)
}

func Test_CommandHandler_Error_AlreadyPaidReportsNotFound(t *testing.T) {
	// arrange - a paid fine is indistinguishable from a missing one
	ctx := context.Background()
	store := memorystore.NewMemoryStore()
	now := time.Now()

	_, fineID := seedUnpaidFine(store, now)
	handler := payfine.NewCommandHandler(store)
	command := payfine.BuildCommand(givenAdmin(1), fineID, "cash", now)

	_, err := handler.Handle(ctx, command)
	require.NoError(t, err)

	// act - pay a second time
	_, err = handler.Handle(ctx, command)

	// assert
	assert.ErrorIs(t, err, core.ErrFineNotFound)
}

func Test_CommandHandler_Error_StrangerCannotPayOnline(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memorystore.NewMemoryStore()
	now := time.Now()

	_, fineID := seedUnpaidFine(store, now)
	stranger := core.Actor{ID: 999, Role: core.RoleExternal, IsActive: true}

	handler := payfine.NewCommandHandler(store)
	command := payfine.BuildCommand(stranger, fineID, "stripe", now)

	// act
	_, err := handler.Handle(ctx, command)

	// assert
	assert.ErrorIs(t, err, core.ErrForbidden)

	fine, _ := store.FineByID(fineID)
	assert.False(t, fine.Paid, "fine untouched on rejection")
}

func seedUnpaidFine(store *memorystore.MemoryStore, now time.Time) (core.UserIDInt64, core.FineIDInt64) {
	borrowerID := store.SeedUser(core.UserAccount{Email: "ada@example.edu", Role: core.RoleStudent, IsActive: true})
	bookID := store.SeedBook(core.Book{
		Title: "T", Author: "A", ISBN: "I-1", OriginalQuantity: 3, CurrentQuantity: 3,
	})
	borrowID := store.SeedBorrow(core.Borrow{
		BookID: bookID, BorrowedBy: borrowerID, GivenBy: 1,
		BorrowDate: now.AddDate(0, 0, -20), DueDate: now.AddDate(0, 0, -6),
	})
	fineID := store.SeedFine(core.Fine{
		BorrowID: borrowID, Amount: 300, Paid: false, DateCreated: now.AddDate(0, 0, -2),
	})

	return borrowerID, fineID
}
