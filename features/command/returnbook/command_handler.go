package returnbook

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
// Closing the borrow, restocking the copy, assessing the fine and notifying
// the borrower all happen in one transaction.
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
	return h.store.WithinTx(ctx, func(tx lendingstore.Tx) error {
		borrow, err := tx.GetBorrowForUpdate(ctx, command.BorrowID)
		if err != nil {
			if errors.Is(err, lendingstore.ErrRecordNotFound) {
				return core.ErrBorrowNotFound
			}

			return err
		}

		// Business logic phase - delegate to pure core function
		assessment, decideErr := Decide(command, borrow)
		if decideErr != nil {
			return decideErr
		}

		if err = tx.MarkBorrowReturned(ctx, command.BorrowID, command.OccurredAt, command.Actor.ID); err != nil {
			if errors.Is(err, lendingstore.ErrRecordNotFound) {
				return core.ErrBorrowAlreadyReturned
			}

			return err
		}

		if err = tx.IncrementBookQuantity(ctx, borrow.BookID); err != nil {
			return err
		}

		receivedBy := command.Actor.ID
		borrow.IsReturned = true
		borrow.ReturnDate = &command.OccurredAt
		borrow.ReceivedBy = &receivedBy

		if err = shell.AppendAuditRecord(ctx, tx, core.BuildBookReturned(borrow, receivedBy, command.OccurredAt)); err != nil {
			return err
		}

		if assessment.Overdue {
			return h.assessFine(ctx, tx, borrow, assessment, command.OccurredAt)
		}

		return nil
	})
}

// assessFine stores the fine for a late return and notifies the borrower.
// A borrow carries at most one fine; if one exists already, nothing happens.
func (h CommandHandler) assessFine(
	ctx context.Context,
	tx lendingstore.Tx,
	borrow core.Borrow,
	assessment core.FineAssessment,
	occurredAt core.OccurredAtTS,
) error {
	fineExists, err := tx.FineExistsForBorrow(ctx, borrow.ID)
	if err != nil {
		return err
	}

	if fineExists {
		return nil
	}

	fine := core.Fine{
		BorrowID:    borrow.ID,
		Amount:      assessment.Amount,
		Paid:        false,
		DateCreated: occurredAt,
	}

	if _, err = tx.InsertFine(ctx, fine); err != nil {
		if errors.Is(err, lendingstore.ErrUniqueViolation) {
			return core.ErrFineAlreadyExists
		}

		return err
	}

	notification := core.BuildOverdueFinesNotification(borrow.BorrowedBy, occurredAt)
	if err = tx.InsertNotification(ctx, notification); err != nil {
		return err
	}

	return shell.AppendAuditRecord(ctx, tx, core.BuildFineAssessed(borrow, assessment, occurredAt))
}
