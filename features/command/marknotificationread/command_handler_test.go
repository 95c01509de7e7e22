package marknotificationread_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookwyrmhq/lending-backend-go/core"
	"github.com/bookwyrmhq/lending-backend-go/features/command/marknotificationread"
	"github.com/bookwyrmhq/lending-backend-go/testutil/memorystore"
)

func Test_CommandHandler_Success(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memorystore.NewMemoryStore()
	userID := store.SeedUser(core.UserAccount{Email: "ada@example.edu", Role: core.RoleStudent, IsActive: true})
	notificationID := store.SeedNotification(core.Notification{
		UserID: userID, Message: core.OverdueFinesMessage, SentDate: time.Now().AddDate(0, 0, -1),
	})

	handler := marknotificationread.NewCommandHandler(store)
	actor := core.Actor{ID: userID, Role: core.RoleStudent, IsActive: true}
	command := marknotificationread.BuildCommand(actor, notificationID, time.Now())

	// act
	_, err := handler.Handle(ctx, command)

	// assert
	require.NoError(t, err)

	notifications := store.AllNotifications()
	require.Len(t, notifications, 1)
	assert.True(t, notifications[0].IsRead)
}

func Test_CommandHandler_Error_NotFound(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memorystore.NewMemoryStore()
	handler := marknotificationread.NewCommandHandler(store)
	actor := core.Actor{ID: 7, Role: core.RoleStudent, IsActive: true}
	command := marknotificationread.BuildCommand(actor, 999, time.Now())

	// act
	_, err := handler.Handle(ctx, command)

	// assert
	assert.ErrorIs(t, err, core.ErrNotificationNotFound)
}

func Test_CommandHandler_Error_AlreadyReadLooksLikeNotFound(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memorystore.NewMemoryStore()
	userID := store.SeedUser(core.UserAccount{Email: "ada@example.edu", Role: core.RoleStudent, IsActive: true})
	notificationID := store.SeedNotification(core.Notification{
		UserID: userID, Message: core.OverdueFinesMessage, SentDate: time.Now(), IsRead: true,
	})

	handler := marknotificationread.NewCommandHandler(store)
	actor := core.Actor{ID: userID, Role: core.RoleStudent, IsActive: true}
	command := marknotificationread.BuildCommand(actor, notificationID, time.Now())

	// act
	_, err := handler.Handle(ctx, command)

	// assert
	assert.ErrorIs(t, err, core.ErrNotificationNotFound)
}

func Test_CommandHandler_Error_AnotherUsersNotificationLooksLikeNotFound(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memorystore.NewMemoryStore()
	ownerID := store.SeedUser(core.UserAccount{Email: "ada@example.edu", Role: core.RoleStudent, IsActive: true})
	notificationID := store.SeedNotification(core.Notification{
		UserID: ownerID, Message: core.OverdueFinesMessage, SentDate: time.Now(),
	})

	handler := marknotificationread.NewCommandHandler(store)
	stranger := core.Actor{ID: 999, Role: core.RoleStudent, IsActive: true}
	command := marknotificationread.BuildCommand(stranger, notificationID, time.Now())

	// act
	_, err := handler.Handle(ctx, command)

	// assert
	assert.ErrorIs(t, err, core.ErrNotificationNotFound)

	notifications := store.AllNotifications()
	require.Len(t, notifications, 1)
	assert.False(t, notifications[0].IsRead, "owner's notification untouched")
}
