package addcategory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookwyrmhq/lending-backend-go/core"
	"github.com/bookwyrmhq/lending-backend-go/features/command/addcategory"
)

func Test_Decide_Success(t *testing.T) {
	// arrange
	admin := core.Actor{ID: 1, Role: core.RoleAdmin, IsActive: true}
	command := addcategory.BuildCommand(admin, "Computer Science", time.Now())

	// act
	category, err := addcategory.Decide(command)

	// assert
	require.NoError(t, err)
	assert.Equal(t, "Computer Science", category.Name)
	assert.Equal(t, admin.ID, category.AddedBy)
}

func Test_Decide_Error_WhenActorIsNotAdmin(t *testing.T) {
	// arrange
	student := core.Actor{ID: 7, Role: core.RoleStudent, IsActive: true}
	command := addcategory.BuildCommand(student, "Computer Science", time.Now())

	// act
	_, err := addcategory.Decide(command)

	// assert
	assert.ErrorIs(t, err, core.ErrForbidden)
}

func Test_Decide_Error_WhenNameIsEmpty(t *testing.T) {
	// arrange
	admin := core.Actor{ID: 1, Role: core.RoleAdmin, IsActive: true}
	command := addcategory.BuildCommand(admin, "", time.Now())

	// act
	_, err := addcategory.Decide(command)

	// assert
	assert.ErrorIs(t, err, core.ErrMissingRequiredField)
}
