package payfine

import (
	"github.com/bookwyrmhq/lending-backend-go/core"
	"github.com/bookwyrmhq/lending-backend-go/lendingstore"
)

// Payment is the settlement to record for a fine, produced by Decide.
type Payment struct {
	Method        core.PaymentMethod
	TransactionID *string
	CollectedBy   *core.UserIDInt64
}

// Decide implements the business logic that authorizes a fine payment.
// This is a pure function with no side effects - the fresh transaction id for
// online payments is generated by the handler and passed in.
//
// Business Rules:
//
//	GIVEN: An unpaid fine with FineID on a borrow of some borrower
//	WHEN: PayFine command is received
//	THEN: The fine is settled; cash payments record who collected the money,
//	      online payments record a fresh transaction id, and the collector is
//	      recorded only when the payer is an admin
//	ERROR: "invalid payment method" for a method outside the accepted set
//	ERROR: "actor does not have the required capability" for cash paid to a
//	       non-admin, or an online payment by someone else than the borrower
//	       or an admin
func Decide(command Command, fine lendingstore.FineWithBorrower, transactionID string) (Payment, error) {
	method, err := core.ParsePaymentMethod(command.Method)
	if err != nil {
		return Payment{}, err
	}

	if method.IsCash() {
		// Cash changes hands at the counter; only staff may receive it.
		if err = core.RequireAdmin(command.Actor); err != nil {
			return Payment{}, err
		}

		collectedBy := command.Actor.ID

		return Payment{
			Method:      method,
			CollectedBy: &collectedBy,
		}, nil
	}

	if err = core.RequireSelfOrAdmin(command.Actor, fine.BorrowedBy); err != nil {
		return Payment{}, err
	}

	payment := Payment{
		Method:        method,
		TransactionID: &transactionID,
	}

	if command.Actor.Role.IsAdmin() {
		collectedBy := command.Actor.ID
		payment.CollectedBy = &collectedBy
	}

	return payment, nil
}
