package payfine

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

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
	// 32 lowercase hex chars, the format the payment provider callbacks use.
	transactionID := strings.ReplaceAll(uuid.New().String(), "-", "")

	return h.store.WithinTx(ctx, func(tx lendingstore.Tx) error {
		fine, err := tx.GetUnpaidFineForUpdate(ctx, command.FineID)
		if err != nil {
			if errors.Is(err, lendingstore.ErrRecordNotFound) {
				return core.ErrFineNotFound
			}

			return err
		}

		// Business logic phase - delegate to pure core function
		payment, decideErr := Decide(command, fine, transactionID)
		if decideErr != nil {
			return decideErr
		}

		err = tx.MarkFinePaid(
			ctx,
			command.FineID,
			command.OccurredAt,
			payment.Method,
			payment.TransactionID,
			payment.CollectedBy,
		)
		if err != nil {
			if errors.Is(err, lendingstore.ErrRecordNotFound) {
				return core.ErrFineNotFound
			}

			return err
		}

		paidFine := fine.Fine
		paidFine.Paid = true
		paidFine.DatePaid = &command.OccurredAt
		paidFine.PaymentMethod = &payment.Method
		paidFine.TransactionID = payment.TransactionID
		paidFine.CollectedBy = payment.CollectedBy

		eventTransactionID := ""
		if payment.TransactionID != nil {
			eventTransactionID = *payment.TransactionID
		}

		return shell.AppendAuditRecord(
			ctx,
			tx,
			core.BuildFinePaid(paidFine, payment.Method, eventTransactionID, payment.CollectedBy, command.OccurredAt),
		)
	})
}
