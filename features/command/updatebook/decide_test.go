package updatebook_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookwyrmhq/lending-backend-go/core"
	"github.com/bookwyrmhq/lending-backend-go/features/command/updatebook"
)

func Test_Decide_Success_OnlySetFieldsChange(t *testing.T) {
	// arrange
	admin := core.Actor{ID: 1, Role: core.RoleAdmin, IsActive: true}
	newLocation := "Shelf B-3"
	newQuantity := 4
	command := updatebook.BuildCommand(admin, 42, core.BookChanges{
		Location: &newLocation,
		Quantity: &newQuantity,
	}, time.Now())

	// act
	changes, err := updatebook.Decide(command)

	// assert
	require.NoError(t, err)
	assert.Equal(t, []string{"quantity", "location"}, changes.FieldNames())
	assert.Nil(t, changes.Title)
	assert.Nil(t, changes.ISBN)
}

func Test_Decide_BusinessErrors(t *testing.T) {
	admin := core.Actor{ID: 1, Role: core.RoleAdmin, IsActive: true}
	student := core.Actor{ID: 7, Role: core.RoleStudent, IsActive: true}

	emptyTitle := ""
	negativeQuantity := -1
	someTitle := "T"

	testCases := []struct {
		name        string
		actor       core.Actor
		changes     core.BookChanges
		expectedErr error
	}{
		{
			name:        "non-admin actor",
			actor:       student,
			changes:     core.BookChanges{Title: &someTitle},
			expectedErr: core.ErrForbidden,
		},
		{
			name:        "no fields set",
			actor:       admin,
			changes:     core.BookChanges{},
			expectedErr: core.ErrNoFieldsToUpdate,
		},
		{
			name:        "empty title",
			actor:       admin,
			changes:     core.BookChanges{Title: &emptyTitle},
			expectedErr: core.ErrMissingRequiredField,
		},
		{
			name:        "negative quantity",
			actor:       admin,
			changes:     core.BookChanges{Quantity: &negativeQuantity},
			expectedErr: core.ErrMissingRequiredField,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			command := updatebook.BuildCommand(tc.actor, 42, tc.changes, time.Now())

			// act
			_, err := updatebook.Decide(command)

			// assert
			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}
