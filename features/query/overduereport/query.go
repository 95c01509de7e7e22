package overduereport

import (
	"time"

	"github.com/bookwyrmhq/lending-backend-go/core"
	"github.com/bookwyrmhq/lending-backend-go/lendingstore"
)

const (
	queryType = "OverdueReport"
)

// Query represents the intent to list all open borrows that are overdue as of
// a reference time, optionally narrowed to one borrower role and sorted by
// due date.
type Query struct {
	Actor       core.Actor
	AsOf        time.Time
	Role        core.Role // empty means all roles
	DueDateSort lendingstore.SortOrder
}

// BuildQuery creates a new Query with the provided parameters.
func BuildQuery(actor core.Actor, asOf time.Time, role core.Role, dueDateSort lendingstore.SortOrder) Query {
	return Query{
		Actor:       actor,
		AsOf:        asOf,
		Role:        role,
		DueDateSort: dueDateSort,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
