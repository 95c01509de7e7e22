package overduereport

import (
	"time"

	"github.com/bookwyrmhq/lending-backend-go/lendingstore"
)

// Report is the result of the overdue report query.
// Rows carry the borrower's role so the report can be rendered per audience.
type Report struct {
	AsOf  time.Time
	Rows  []lendingstore.OverdueBorrowRow
	Count int
}
