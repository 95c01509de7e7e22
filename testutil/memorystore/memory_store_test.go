package memorystore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookwyrmhq/lending-backend-go/core"
	"github.com/bookwyrmhq/lending-backend-go/lendingstore"
	"github.com/bookwyrmhq/lending-backend-go/testutil/memorystore"
)

func Test_WithinTx_CommitsOnSuccess(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memorystore.NewMemoryStore()

	// act
	var bookID core.BookIDInt64
	err := store.WithinTx(ctx, func(tx lendingstore.Tx) error {
		var insertErr error
		bookID, insertErr = tx.InsertBook(ctx, core.Book{
			Title: "T", Author: "A", ISBN: "I", OriginalQuantity: 2, CurrentQuantity: 2,
		})

		return insertErr
	})

	// assert
	require.NoError(t, err)
	book, ok := store.BookByID(bookID)
	assert.True(t, ok)
	assert.Equal(t, "T", book.Title)
}

func Test_WithinTx_RollsBackAllWritesOnError(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memorystore.NewMemoryStore()
	bookID := store.SeedBook(core.Book{
		Title: "T", Author: "A", ISBN: "I", OriginalQuantity: 2, CurrentQuantity: 2,
	})
	boom := errors.New("boom")

	// act - decrement stock and insert a borrow, then fail
	err := store.WithinTx(ctx, func(tx lendingstore.Tx) error {
		if decErr := tx.DecrementBookQuantity(ctx, bookID); decErr != nil {
			return decErr
		}

		if _, insErr := tx.InsertBorrow(ctx, core.Borrow{
			BookID: bookID, BorrowedBy: 20, GivenBy: 1,
			BorrowDate: time.Now(), DueDate: time.Now().AddDate(0, 0, 14),
		}); insErr != nil {
			return insErr
		}

		return boom
	})

	// assert - neither write survived
	assert.ErrorIs(t, err, boom)
	book, _ := store.BookByID(bookID)
	assert.Equal(t, 2, book.CurrentQuantity)
}

func Test_WithinTx_EnforcesUniqueConstraints(t *testing.T) {
	ctx := context.Background()
	store := memorystore.NewMemoryStore()
	store.SeedUser(core.UserAccount{Email: "ada@example.edu", Role: core.RoleStudent, IsActive: true})

	err := store.WithinTx(ctx, func(tx lendingstore.Tx) error {
		_, insErr := tx.InsertUser(ctx, core.UserAccount{Email: "ada@example.edu", Role: core.RoleExternal})

		return insErr
	})

	assert.ErrorIs(t, err, lendingstore.ErrUniqueViolation)
}

func Test_WithinTx_QuantityInvariants(t *testing.T) {
	ctx := context.Background()
	store := memorystore.NewMemoryStore()
	bookID := store.SeedBook(core.Book{
		Title: "T", Author: "A", ISBN: "I", OriginalQuantity: 2, CurrentQuantity: 2,
	})

	incErr := store.WithinTx(ctx, func(tx lendingstore.Tx) error {
		return tx.IncrementBookQuantity(ctx, bookID)
	})
	assert.ErrorIs(t, incErr, lendingstore.ErrQuantityInvariantViolated, "cannot exceed original quantity")

	emptyID := store.SeedBook(core.Book{
		Title: "E", Author: "A", ISBN: "I-2", OriginalQuantity: 1, CurrentQuantity: 0,
	})
	decErr := store.WithinTx(ctx, func(tx lendingstore.Tx) error {
		return tx.DecrementBookQuantity(ctx, emptyID)
	})
	assert.ErrorIs(t, decErr, lendingstore.ErrQuantityInvariantViolated, "cannot go below zero")
}

func Test_FailNextTxWith(t *testing.T) {
	ctx := context.Background()
	store := memorystore.NewMemoryStore()
	boom := errors.New("connection refused")
	store.FailNextTxWith(boom)

	err := store.WithinTx(ctx, func(_ lendingstore.Tx) error { return nil })
	assert.ErrorIs(t, err, boom)

	err = store.WithinTx(ctx, func(_ lendingstore.Tx) error { return nil })
	assert.NoError(t, err, "failure is consumed by one call")
}
