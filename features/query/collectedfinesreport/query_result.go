package collectedfinesreport

import (
	"github.com/bookwyrmhq/lending-backend-go/lendingstore"
)

// Report is the result of the collected fines report query.
type Report struct {
	Rows  []lendingstore.CollectedFineRow
	Count int
}
