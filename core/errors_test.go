package core_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bookwyrmhq/lending-backend-go/core"
)

func Test_KindOf(t *testing.T) {
	testCases := []struct {
		err  error
		kind core.ErrorKind
	}{
		{core.ErrBookNotFound, core.KindNotFound},
		{core.ErrBorrowNotFound, core.KindNotFound},
		{core.ErrFineNotFound, core.KindNotFound},
		{core.ErrUserNotFound, core.KindNotFound},
		{core.ErrNotificationNotFound, core.KindNotFound},
		{core.ErrBookUnavailable, core.KindConflict},
		{core.ErrBorrowAlreadyReturned, core.KindConflict},
		{core.ErrFineAlreadyExists, core.KindConflict},
		{core.ErrEmailAlreadyRegistered, core.KindConflict},
		{core.ErrISBNAlreadyRegistered, core.KindConflict},
		{core.ErrCategoryAlreadyExists, core.KindConflict},
		{core.ErrBorrowLimitExceeded, core.KindLimitExceeded},
		{core.ErrForbidden, core.KindForbidden},
		{core.ErrInvalidPaymentMethod, core.KindInvalidInput},
		{core.ErrInvalidRole, core.KindInvalidInput},
		{core.ErrMissingRequiredField, core.KindInvalidInput},
		{core.ErrNoFieldsToUpdate, core.KindInvalidInput},
		{errors.New("database exploded"), core.KindInternal},
		{nil, core.KindInternal},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.kind, core.KindOf(tc.err), "kind of %v", tc.err)
	}
}

func Test_KindOf_SeesThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("handling command: %w", core.ErrForbidden)

	assert.Equal(t, core.KindForbidden, core.KindOf(wrapped))
}
