package addbook

import (
	"context"
	"errors"

	"github.com/bookwyrmhq/lending-backend-go/core"
	"github.com/bookwyrmhq/lending-backend-go/lendingstore"
	"github.com/bookwyrmhq/lending-backend-go/shell"
)

// LendingStore defines the interface needed by the CommandHandler for store operations.
type LendingStore interface {
	WithinTx(ctx context.Context, fn func(tx lendingstore.Tx) error) error
}

// CommandHandler orchestrates the complete command processing workflow with pure business logic and retry.
type CommandHandler struct {
	store        LendingStore
	retryOptions []shell.RetryOption
}

// Option configures a CommandHandler.
type Option func(*CommandHandler)

// WithRetryOptions sets a custom retry configuration for the handler.
func WithRetryOptions(opts ...shell.RetryOption) Option {
	return func(h *CommandHandler) {
		h.retryOptions = opts
	}
}

// NewCommandHandler creates a new CommandHandler with optional configuration.
func NewCommandHandler(store LendingStore, opts ...Option) CommandHandler {
	handler := CommandHandler{
		store: store,
	}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// Handle executes the complete command processing workflow with retry logic.
// Returns HandlerResult containing business outcomes and execution metadata for observability.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	retryMetrics, err := shell.RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		return h.executeCommand(retryCtx, command)
	}, h.retryOptions...)

	if err != nil {
		return shell.NewErrorResult(retryMetrics), err
	}

	return shell.NewSuccessResult(retryMetrics), nil
}

// executeCommand contains the core command processing logic that can be retried.
func (h CommandHandler) executeCommand(ctx context.Context, command Command) error {
	// Business logic phase - delegate to pure core function
	book, decideErr := Decide(command)
	if decideErr != nil {
		return decideErr
	}

	return h.store.WithinTx(ctx, func(tx lendingstore.Tx) error {
		bookID, err := tx.InsertBook(ctx, book)
		if err != nil {
			if errors.Is(err, lendingstore.ErrUniqueViolation) {
				return core.ErrISBNAlreadyRegistered
			}

			return err
		}

		book.ID = bookID

		return shell.AppendAuditRecord(ctx, tx, core.BuildBookAddedToCatalog(book, command.OccurredAt))
	})
}
