package borrowsofuser_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookwyrmhq/lending-backend-go/core"
	"github.com/bookwyrmhq/lending-backend-go/features/query/borrowsofuser"
	"github.com/bookwyrmhq/lending-backend-go/testutil/memorystore"
)

func Test_QueryHandler_OwnerSeesOwnBorrows_OldestFirst(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memorystore.NewMemoryStore()
	now := time.Now()

	userID := store.SeedUser(core.UserAccount{Email: "ada@example.edu", Role: core.RoleStudent, IsActive: true})
	otherID := store.SeedUser(core.UserAccount{Email: "b@example.com", Role: core.RoleExternal, IsActive: true})
	bookID := store.SeedBook(core.Book{Title: "T", Author: "A", ISBN: "I", OriginalQuantity: 5, CurrentQuantity: 2})

	newer := store.SeedBorrow(core.Borrow{
		BookID: bookID, BorrowedBy: userID, GivenBy: 1,
		BorrowDate: now.AddDate(0, 0, -2), DueDate: now.AddDate(0, 0, 12),
	})
	older := store.SeedBorrow(core.Borrow{
		BookID: bookID, BorrowedBy: userID, GivenBy: 1,
		BorrowDate: now.AddDate(0, 0, -9), DueDate: now.AddDate(0, 0, 5),
	})
	store.SeedBorrow(core.Borrow{
		BookID: bookID, BorrowedBy: otherID, GivenBy: 1,
		BorrowDate: now.AddDate(0, 0, -1), DueDate: now.AddDate(0, 0, 13),
	})

	handler := borrowsofuser.NewQueryHandler(store)
	owner := core.Actor{ID: userID, Role: core.RoleStudent, IsActive: true}

	// act
	result, err := handler.Handle(ctx, borrowsofuser.BuildQuery(owner, userID))

	// assert
	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)
	require.Len(t, result.Borrows, 2)
	assert.Equal(t, older, result.Borrows[0].ID)
	assert.Equal(t, newer, result.Borrows[1].ID)
}

func Test_QueryHandler_AdminSeesAnyUsersBorrows(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memorystore.NewMemoryStore()
	userID := store.SeedUser(core.UserAccount{Email: "ada@example.edu", Role: core.RoleStudent, IsActive: true})

	handler := borrowsofuser.NewQueryHandler(store)
	admin := core.Actor{ID: 1, Role: core.RoleAdmin, IsActive: true}

	// act
	result, err := handler.Handle(ctx, borrowsofuser.BuildQuery(admin, userID))

	// assert
	require.NoError(t, err)
	assert.Zero(t, result.Count)
}

func Test_QueryHandler_StrangerIsForbidden(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memorystore.NewMemoryStore()
	userID := store.SeedUser(core.UserAccount{Email: "ada@example.edu", Role: core.RoleStudent, IsActive: true})

	handler := borrowsofuser.NewQueryHandler(store)
	stranger := core.Actor{ID: 999, Role: core.RoleExternal, IsActive: true}

	// act
	_, err := handler.Handle(ctx, borrowsofuser.BuildQuery(stranger, userID))

	// assert
	assert.ErrorIs(t, err, core.ErrForbidden)
}
