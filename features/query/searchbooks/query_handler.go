package searchbooks

import (
	"context"

	"github.com/bookwyrmhq/lending-backend-go/lendingstore"
)

// LendingStore defines the interface needed by the QueryHandler for store operations.
type LendingStore interface {
	WithinTx(ctx context.Context, fn func(tx lendingstore.Tx) error) error
}

// QueryHandler orchestrates the complete query processing workflow.
// The catalog is readable by anyone, so there is no access check.
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
func (h QueryHandler) Handle(ctx context.Context, query Query) (Catalog, error) {
	var rows []lendingstore.CatalogBookRow

	txErr := h.store.WithinTx(ctx, func(tx lendingstore.Tx) error {
		var err error
		rows, err = tx.SearchBooks(ctx, lendingstore.BookSearchFilter{
			Title:        query.Title,
			Author:       query.Author,
			ISBN:         query.ISBN,
			CategoryName: query.CategoryName,
		})

		return err
	})
	if txErr != nil {
		return Catalog{}, txErr
	}

	return Catalog{
		Rows:  rows,
		Count: len(rows),
	}, nil
}
