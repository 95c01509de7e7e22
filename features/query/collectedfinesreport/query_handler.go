package collectedfinesreport

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
// The collected fines report is an administrative view.
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
func (h QueryHandler) Handle(ctx context.Context, query Query) (Report, error) {
	if err := core.RequireAdmin(query.Actor); err != nil {
		return Report{}, err
	}

	var rows []lendingstore.CollectedFineRow

	txErr := h.store.WithinTx(ctx, func(tx lendingstore.Tx) error {
		var err error
		rows, err = tx.CollectedFines(ctx, lendingstore.CollectedFinesFilter{
			Role:            query.Role,
			DatePaidSort:    query.DatePaidSort,
			DateCreatedSort: query.DateCreatedSort,
		})

		return err
	})
	if txErr != nil {
		return Report{}, txErr
	}

	return Report{
		Rows:  rows,
		Count: len(rows),
	}, nil
}
