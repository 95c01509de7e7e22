package finesofuser

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
// Users see their own fines; admins see anyone's. The listing and the totals
// come from the same transaction so they never disagree.
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
func (h QueryHandler) Handle(ctx context.Context, query Query) (UserFines, error) {
	if err := core.RequireSelfOrAdmin(query.Actor, query.UserID); err != nil {
		return UserFines{}, err
	}

	var fines []core.Fine
	var totals lendingstore.FineTotals

	txErr := h.store.WithinTx(ctx, func(tx lendingstore.Tx) error {
		var err error

		fines, err = tx.FinesOf(ctx, query.UserID)
		if err != nil {
			return err
		}

		totals, err = tx.FineTotalsOf(ctx, query.UserID)

		return err
	})
	if txErr != nil {
		return UserFines{}, txErr
	}

	return UserFines{
		UserID: query.UserID,
		Fines:  fines,
		Totals: totals,
		Count:  len(fines),
	}, nil
}
