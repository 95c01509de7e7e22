package addbook_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookwyrmhq/lending-backend-go/core"
	"github.com/bookwyrmhq/lending-backend-go/features/command/addbook"
	"github.com/bookwyrmhq/lending-backend-go/testutil/memorystore"
)

func Test_CommandHandler_Success_AddsBookToCatalog(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memorystore.NewMemoryStore()
	admin := core.Actor{ID: 1, Role: core.RoleAdmin, IsActive: true}

	handler := addbook.NewCommandHandler(store)
	command := addbook.BuildCommand(
		admin, "The Go Programming Language", "Donovan & Kernighan",
		"978-0-13-419044-0", 2, 3, "Shelf A-12", time.Now())

	// act
	_, err := handler.Handle(ctx, command)

	// assert
	require.NoError(t, err)

	records := store.AuditRecords()
	require.Len(t, records, 1)
	assert.Equal(t, core.BookAddedToCatalogEventType, records[0].EventType)
}

func Test_CommandHandler_Error_DuplicateISBN(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memorystore.NewMemoryStore()
	admin := core.Actor{ID: 1, Role: core.RoleAdmin, IsActive: true}
	store.SeedBook(core.Book{
		Title: "T", Author: "A", ISBN: "978-0-13-419044-0", OriginalQuantity: 1, CurrentQuantity: 1,
	})

	handler := addbook.NewCommandHandler(store)
	command := addbook.BuildCommand(
		admin, "Another Title", "Another Author", "978-0-13-419044-0", 2, 3, "", time.Now())

	// act
	_, err := handler.Handle(ctx, command)

	// assert
	assert.ErrorIs(t, err, core.ErrISBNAlreadyRegistered)
	assert.Empty(t, store.AuditRecords())
}

func Test_CommandHandler_Error_NonAdmin(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memorystore.NewMemoryStore()
	student := core.Actor{ID: 7, Role: core.RoleStudent, IsActive: true}

	handler := addbook.NewCommandHandler(store)
	command := addbook.BuildCommand(student, "T", "A", "I", 2, 3, "", time.Now())

	// act
	_, err := handler.Handle(ctx, command)

	// assert
	assert.ErrorIs(t, err, core.ErrForbidden)
}
