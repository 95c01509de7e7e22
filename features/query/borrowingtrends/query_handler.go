package borrowingtrends

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
// Borrowing trends are an administrative view.
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
// The time window compares one calendar component of the borrow date with the
// same component of AsOf, so TimeWindowMonth groups by month across years.
func (h QueryHandler) Handle(ctx context.Context, query Query) (Report, error) {
	if err := core.RequireAdmin(query.Actor); err != nil {
		return Report{}, err
	}

	var rows []core.Borrow

	txErr := h.store.WithinTx(ctx, func(tx lendingstore.Tx) error {
		var err error
		rows, err = tx.BorrowingTrends(ctx, lendingstore.BorrowingTrendsFilter{
			AsOf:       query.AsOf,
			Role:       query.Role,
			TimeWindow: query.TimeWindow,
			CategoryID: query.CategoryID,
		})

		return err
	})
	if txErr != nil {
		return Report{}, txErr
	}

	return Report{
		AsOf:  query.AsOf,
		Rows:  rows,
		Count: len(rows),
	}, nil
}
