package marknotificationread

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

// CommandHandler acknowledges a notification for its owner. The store scopes
// the update to the acting user, so there is no separate authorization check:
// another user's notification is simply not found. An already-read
// notification is reported the same way, so no Decide function is needed.
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
		err := tx.MarkNotificationRead(ctx, command.NotificationID, command.Actor.ID)
		if err != nil {
			if errors.Is(err, lendingstore.ErrRecordNotFound) {
				return core.ErrNotificationNotFound
			}

			return err
		}

		return nil
	})
}
