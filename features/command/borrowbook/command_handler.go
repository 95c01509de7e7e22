package borrowbook

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
// It handles the lending workflow: Lock state -> Decide -> Mutate -> Audit, all in one transaction.
// External wrappers handle all observability concerns.
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
		// retryOptions defaults to nil (will use retry defaults)
	}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// Handle executes the complete command processing workflow with retry logic.
// It delegates business logic to executeCommand and handles retry with exponential backoff.
// Returns HandlerResult containing business outcomes and execution metadata for observability.
//
// Resilience: Implements exponential backoff retry logic for concurrency conflicts.
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
// The capability check runs before any store access, so a non-admin caller
// learns nothing about which book ids exist.
func (h CommandHandler) executeCommand(ctx context.Context, command Command) error {
	if err := core.RequireAdmin(command.Actor); err != nil {
		return err
	}

	return h.store.WithinTx(ctx, func(tx lendingstore.Tx) error {
		book, err := tx.GetBookForUpdate(ctx, command.BookID)
		if err != nil {
			if errors.Is(err, lendingstore.ErrRecordNotFound) {
				return core.ErrBookNotFound
			}

			return err
		}

		openBorrowCount, err := tx.CountOpenBorrowsOf(ctx, command.BorrowerID)
		if err != nil {
			return err
		}

		// Business logic phase - delegate to pure core function
		borrow, decideErr := Decide(command, book, openBorrowCount)
		if decideErr != nil {
			return decideErr
		}

		if err = tx.DecrementBookQuantity(ctx, command.BookID); err != nil {
			if errors.Is(err, lendingstore.ErrQuantityInvariantViolated) {
				return core.ErrBookUnavailable
			}

			return err
		}

		borrowID, err := tx.InsertBorrow(ctx, borrow)
		if err != nil {
			return err
		}

		borrow.ID = borrowID

		return shell.AppendAuditRecord(ctx, tx, core.BuildBookBorrowed(borrow, command.OccurredAt))
	})
}
