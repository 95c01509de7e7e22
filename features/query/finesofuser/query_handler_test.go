package finesofuser_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookwyrmhq/lending-backend-go/core"
	"github.com/bookwyrmhq/lending-backend-go/features/query/finesofuser"
	"github.com/bookwyrmhq/lending-backend-go/testutil/memorystore"
)

func Test_QueryHandler_ListsFinesWithTotals(t *testing.T) {
	// arrange - one paid and one unpaid fine for the user, one for someone else
	ctx := context.Background()
	store := memorystore.NewMemoryStore()
	now := time.Now()

	userID := store.SeedUser(core.UserAccount{Email: "ada@example.edu", Role: core.RoleStudent, IsActive: true})
	otherID := store.SeedUser(core.UserAccount{Email: "b@example.com", Role: core.RoleExternal, IsActive: true})
	bookID := store.SeedBook(core.Book{Title: "T", Author: "A", ISBN: "I", OriginalQuantity: 5, CurrentQuantity: 2})

	firstBorrow := store.SeedBorrow(core.Borrow{
		BookID: bookID, BorrowedBy: userID, GivenBy: 1,
		BorrowDate: now.AddDate(0, 0, -30), DueDate: now.AddDate(0, 0, -16),
	})
	secondBorrow := store.SeedBorrow(core.Borrow{
		BookID: bookID, BorrowedBy: userID, GivenBy: 1,
		BorrowDate: now.AddDate(0, 0, -20), DueDate: now.AddDate(0, 0, -6),
	})
	otherBorrow := store.SeedBorrow(core.Borrow{
		BookID: bookID, BorrowedBy: otherID, GivenBy: 1,
		BorrowDate: now.AddDate(0, 0, -20), DueDate: now.AddDate(0, 0, -6),
	})

	paidAt := now.AddDate(0, 0, -1)
	method := core.PaymentMethodPayPal
	store.SeedFine(core.Fine{
		BorrowID: firstBorrow, Amount: 500, Paid: true,
		DateCreated: now.AddDate(0, 0, -10), DatePaid: &paidAt, PaymentMethod: &method,
	})
	store.SeedFine(core.Fine{
		BorrowID: secondBorrow, Amount: 300, Paid: false, DateCreated: now.AddDate(0, 0, -2),
	})
	store.SeedFine(core.Fine{
		BorrowID: otherBorrow, Amount: 900, Paid: false, DateCreated: now.AddDate(0, 0, -2),
	})

	handler := finesofuser.NewQueryHandler(store)
	owner := core.Actor{ID: userID, Role: core.RoleStudent, IsActive: true}

	// act
	result, err := handler.Handle(ctx, finesofuser.BuildQuery(owner, userID))

	// assert
	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)
	assert.Equal(t, float64(500), result.Totals.Paid)
	assert.Equal(t, float64(300), result.Totals.Unpaid)

	require.Len(t, result.Fines, 2)
	assert.Equal(t, float64(500), result.Fines[0].Amount, "oldest fine first")
	assert.Equal(t, float64(300), result.Fines[1].Amount)
}

func Test_QueryHandler_StrangerIsForbidden(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memorystore.NewMemoryStore()
	userID := store.SeedUser(core.UserAccount{Email: "ada@example.edu", Role: core.RoleStudent, IsActive: true})

	handler := finesofuser.NewQueryHandler(store)
	stranger := core.Actor{ID: 999, Role: core.RoleStudent, IsActive: true}

	// act
	_, err := handler.Handle(ctx, finesofuser.BuildQuery(stranger, userID))

	// assert
	assert.ErrorIs(t, err, core.ErrForbidden)
}
