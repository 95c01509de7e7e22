package borrowingtrends

import (
	"time"

	"github.com/bookwyrmhq/lending-backend-go/core"
	"github.com/bookwyrmhq/lending-backend-go/lendingstore"
)

const (
	queryType = "BorrowingTrends"
)

// Query represents the intent to list borrows for trend analysis, optionally
// narrowed to one borrower role, to the calendar window of a reference time,
// and to one book category.
type Query struct {
	Actor      core.Actor
	AsOf       time.Time
	Role       core.Role               // empty means all roles
	TimeWindow lendingstore.TimeWindow // zero means all time
	CategoryID int64                   // zero means all categories
}

// BuildQuery creates a new Query with the provided parameters.
func BuildQuery(
	actor core.Actor,
	asOf time.Time,
	role core.Role,
	timeWindow lendingstore.TimeWindow,
	categoryID int64,
) Query {
	return Query{
		Actor:      actor,
		AsOf:       asOf,
		Role:       role,
		TimeWindow: timeWindow,
		CategoryID: categoryID,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
