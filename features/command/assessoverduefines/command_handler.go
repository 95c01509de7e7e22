package assessoverduefines

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

// CommandHandler orchestrates the overdue sweep. All assessments of one sweep
// happen in a single transaction so a concurrent return never sees a fine
// without its notification.
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
// A sweep that finds nothing to assess reports an idempotent result.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	var isIdempotent bool

	retryMetrics, err := shell.RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		assessedCount, execErr := h.executeCommand(retryCtx, command)
		isIdempotent = assessedCount == 0

		return execErr
	}, h.retryOptions...)

	if err != nil {
		return shell.NewErrorResult(retryMetrics), err
	}

	if isIdempotent {
		return shell.NewIdempotentResult(retryMetrics), nil
	}

	return shell.NewSuccessResult(retryMetrics), nil
}

// executeCommand contains the core command processing logic that can be retried.
// It returns the number of fines assessed.
func (h CommandHandler) executeCommand(ctx context.Context, command Command) (int, error) {
	if err := core.RequireAdmin(command.Actor); err != nil {
		return 0, err
	}

	assessedCount := 0

	txErr := h.store.WithinTx(ctx, func(tx lendingstore.Tx) error {
		assessedCount = 0

		borrows, err := tx.OpenOverdueBorrowsWithoutFine(ctx, command.AsOf)
		if err != nil {
			return err
		}

		for _, borrow := range borrows {
			// Business logic phase - delegate to pure core function
			assessment := Decide(command, borrow)
			if !assessment.Overdue {
				continue
			}

			fine := core.Fine{
				BorrowID:    borrow.ID,
				Amount:      assessment.Amount,
				Paid:        false,
				DateCreated: command.AsOf,
			}

			if _, err = tx.InsertFine(ctx, fine); err != nil {
				if errors.Is(err, lendingstore.ErrUniqueViolation) {
					return core.ErrFineAlreadyExists
				}

				return err
			}

			notification := core.BuildOverdueFinesNotification(borrow.BorrowedBy, command.AsOf)
			if err = tx.InsertNotification(ctx, notification); err != nil {
				return err
			}

			if err = shell.AppendAuditRecord(ctx, tx, core.BuildFineAssessed(borrow, assessment, command.AsOf)); err != nil {
				return err
			}

			assessedCount++
		}

		return nil
	})

	if txErr != nil {
		return 0, txErr
	}

	return assessedCount, nil
}
