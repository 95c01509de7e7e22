package finesofuser

import (
	"github.com/bookwyrmhq/lending-backend-go/core"
	"github.com/bookwyrmhq/lending-backend-go/lendingstore"
)

// UserFines represents the query result containing all fines of one user
// together with the paid/unpaid amount totals.
type UserFines struct {
	UserID core.UserIDInt64
	Fines  []core.Fine
	Totals lendingstore.FineTotals
	Count  int
}
