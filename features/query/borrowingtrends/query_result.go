package borrowingtrends

import (
	"time"

	"github.com/bookwyrmhq/lending-backend-go/core"
)

// Report is the result of the borrowing trends query.
type Report struct {
	AsOf  time.Time
	Rows  []core.Borrow
	Count int
}
