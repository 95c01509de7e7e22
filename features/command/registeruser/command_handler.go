package registeruser

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/bookwyrmhq/lending-backend-go/core"
	"github.com/bookwyrmhq/lending-backend-go/lendingstore"
	"github.com/bookwyrmhq/lending-backend-go/shell"
)

// LendingStore defines the interface needed by the CommandHandler for store operations.
type LendingStore interface {
	WithinTx(ctx context.Context, fn func(tx lendingstore.Tx) error) error
}

// CommandHandler orchestrates the complete command processing workflow with pure business logic and retry.
// The password is hashed with bcrypt before the transaction starts; plain
// passwords never reach the store.
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
	passwordHash, hashErr := hashPassword(command.Password)
	if hashErr != nil {
		return hashErr
	}

	// Business logic phase - delegate to pure core function
	user, decideErr := Decide(command, passwordHash)
	if decideErr != nil {
		return decideErr
	}

	return h.store.WithinTx(ctx, func(tx lendingstore.Tx) error {
		emailTaken, err := tx.EmailExists(ctx, command.Email)
		if err != nil {
			return err
		}

		if emailTaken {
			return core.ErrEmailAlreadyRegistered
		}

		userID, err := tx.InsertUser(ctx, user)
		if err != nil {
			if errors.Is(err, lendingstore.ErrUniqueViolation) {
				return core.ErrEmailAlreadyRegistered
			}

			return err
		}

		user.ID = userID

		return shell.AppendAuditRecord(ctx, tx, core.BuildUserRegistered(user, command.OccurredAt))
	})
}

func hashPassword(password string) (string, error) {
	if password == "" {
		// Decide reports the missing field; never hash an empty string.
		return "", nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}
