package borrowsofuser

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
// Users see their own borrows; admins see anyone's.
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
func (h QueryHandler) Handle(ctx context.Context, query Query) (UserBorrows, error) {
	if err := core.RequireSelfOrAdmin(query.Actor, query.UserID); err != nil {
		return UserBorrows{}, err
	}

	var borrows []core.Borrow

	txErr := h.store.WithinTx(ctx, func(tx lendingstore.Tx) error {
		var err error
		borrows, err = tx.BorrowsOf(ctx, query.UserID)

		return err
	})
	if txErr != nil {
		return UserBorrows{}, txErr
	}

	return UserBorrows{
		UserID:  query.UserID,
		Borrows: borrows,
		Count:   len(borrows),
	}, nil
}
