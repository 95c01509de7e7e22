package unreadnotifications

import (
	"context"

	"github.com/bookwyrmhq/lending-backend-go/core"
	"github.com/bookwyrmhq/lending-backend-go/lendingstore"
)

// LendingStore defines the interface needed by the QueryHandler for store operations.
type LendingStore interface {
	WithinTx(ctx context.Context, fn func(tx lendingstore.Tx) error) error
}

// QueryHandler orchestrates the complete query processing workflow.
// Notifications are always scoped to the acting user, so no access check is needed.
type QueryHandler struct {
	store LendingStore
}

// NewQueryHandler creates a new QueryHandler with the provided store dependency.
func NewQueryHandler(store LendingStore) QueryHandler {
	return QueryHandler{
		store: store,
	}
}

// Handle executes the complete query processing workflow.
func (h QueryHandler) Handle(ctx context.Context, query Query) (UserNotifications, error) {
	var notifications []core.Notification

	txErr := h.store.WithinTx(ctx, func(tx lendingstore.Tx) error {
		var err error
		notifications, err = tx.UnreadNotificationsOf(ctx, query.Actor.ID)

		return err
	})
	if txErr != nil {
		return UserNotifications{}, txErr
	}

	return UserNotifications{
		UserID:        query.Actor.ID,
		Notifications: notifications,
		Count:         len(notifications),
	}, nil
}
