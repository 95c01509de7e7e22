package registeruser_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookwyrmhq/lending-backend-go/core"
	"github.com/bookwyrmhq/lending-backend-go/features/command/registeruser"
)

const passwordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

func Test_Decide_Success_RegistersActiveStudent(t *testing.T) {
	// arrange
	command := registeruser.BuildCommand(
		"ada@example.edu", "Ada", "Lovelace", "s3cret", "student", time.Now())

	// act
	account, err := registeruser.Decide(command, passwordHash)

	// assert
	require.NoError(t, err)
	assert.Equal(t, "ada@example.edu", account.Email)
	assert.Equal(t, core.RoleStudent, account.Role)
	assert.Equal(t, passwordHash, account.PasswordHash)
	assert.True(t, account.IsActive)
}

func Test_Decide_Success_RegistersExternalBorrower(t *testing.T) {
	// arrange
	command := registeruser.BuildCommand(
		"guest@example.com", "Guest", "Reader", "s3cret", "external", time.Now())

	// act
	account, err := registeruser.Decide(command, passwordHash)

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.RoleExternal, account.Role)
}

func Test_Decide_BusinessErrors(t *testing.T) {
	testCases := []struct {
		name        string
		email       string
		firstName   string
		lastName    string
		password    string
		role        string
		expectedErr error
	}{
		{
			name:        "empty email",
			firstName:   "Ada",
			lastName:    "Lovelace",
			password:    "s3cret",
			role:        "student",
			expectedErr: core.ErrMissingRequiredField,
		},
		{
			name:        "empty first name",
			email:       "ada@example.edu",
			lastName:    "Lovelace",
			password:    "s3cret",
			role:        "student",
			expectedErr: core.ErrMissingRequiredField,
		},
		{
			name:        "empty password",
			email:       "ada@example.edu",
			firstName:   "Ada",
			lastName:    "Lovelace",
			role:        "student",
			expectedErr: core.ErrMissingRequiredField,
		},
		{
			name:        "admin role cannot be self-assigned",
			email:       "ada@example.edu",
			firstName:   "Ada",
			lastName:    "Lovelace",
			password:    "s3cret",
			role:        "admin",
			expectedErr: core.ErrInvalidRole,
		},
		{
			name:        "unknown role",
			email:       "ada@example.edu",
			firstName:   "Ada",
			lastName:    "Lovelace",
			password:    "s3cret",
			role:        "librarian",
			expectedErr: core.ErrInvalidRole,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			command := registeruser.BuildCommand(
				tc.email, tc.firstName, tc.lastName, tc.password, tc.role, time.Now())

			// act
			_, err := registeruser.Decide(command, passwordHash)

			// assert
			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}
