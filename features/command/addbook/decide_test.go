package addbook_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookwyrmhq/lending-backend-go/core"
	"github.com/bookwyrmhq/lending-backend-go/features/command/addbook"
)

func Test_Decide_Success_AllCopiesStartOnTheShelf(t *testing.T) {
	// arrange
	admin := core.Actor{ID: 1, Role: core.RoleAdmin, IsActive: true}
	command := addbook.BuildCommand(
		admin, "The Go Programming Language", "Donovan & Kernighan",
		"978-0-13-419044-0", 2, 3, "Shelf A-12", time.Now())

	// act
	book, err := addbook.Decide(command)

	// assert
	require.NoError(t, err)
	assert.Equal(t, 3, book.OriginalQuantity)
	assert.Equal(t, 3, book.CurrentQuantity)
	assert.Equal(t, admin.ID, book.AddedBy)
	assert.True(t, book.IsAvailable())
}

func Test_Decide_BusinessErrors(t *testing.T) {
	admin := core.Actor{ID: 1, Role: core.RoleAdmin, IsActive: true}
	student := core.Actor{ID: 7, Role: core.RoleStudent, IsActive: true}

	testCases := []struct {
		name        string
		actor       core.Actor
		title       string
		author      string
		isbn        string
		quantity    int
		expectedErr error
	}{
		{
			name:        "non-admin actor",
			actor:       student,
			title:       "T",
			author:      "A",
			isbn:        "I",
			quantity:    1,
			expectedErr: core.ErrForbidden,
		},
		{
			name:        "empty title",
			actor:       admin,
			author:      "A",
			isbn:        "I",
			quantity:    1,
			expectedErr: core.ErrMissingRequiredField,
		},
		{
			name:        "empty isbn",
			actor:       admin,
			title:       "T",
			author:      "A",
			quantity:    1,
			expectedErr: core.ErrMissingRequiredField,
		},
		{
			name:        "zero quantity",
			actor:       admin,
			title:       "T",
			author:      "A",
			isbn:        "I",
			quantity:    0,
			expectedErr: core.ErrMissingRequiredField,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			command := addbook.BuildCommand(
				tc.actor, tc.title, tc.author, tc.isbn, 2, tc.quantity, "", time.Now())

			// act
			_, err := addbook.Decide(command)

			// assert
			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}
