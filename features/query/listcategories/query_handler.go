package listcategories

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
func (h QueryHandler) Handle(ctx context.Context, _ Query) (Categories, error) {
	var rows []core.Category

	txErr := h.store.WithinTx(ctx, func(tx lendingstore.Tx) error {
		var err error
		rows, err = tx.ListCategories(ctx)

		return err
	})
	if txErr != nil {
		return Categories{}, txErr
	}

	return Categories{
		Rows:  rows,
		Count: len(rows),
	}, nil
}
