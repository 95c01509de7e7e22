package collectedfinesreport

import (
	"github.com/bookwyrmhq/lending-backend-go/core"
	"github.com/bookwyrmhq/lending-backend-go/lendingstore"
)

const (
	queryType = "CollectedFinesReport"
)

// Query represents the intent to list all paid fines, optionally narrowed to
// one borrower role and sorted by payment or creation date.
type Query struct {
	Actor           core.Actor
	Role            core.Role // empty means all roles
	DatePaidSort    lendingstore.SortOrder
	DateCreatedSort lendingstore.SortOrder
}

// BuildQuery creates a new Query with the provided parameters.
func BuildQuery(
	actor core.Actor,
	role core.Role,
	datePaidSort lendingstore.SortOrder,
	dateCreatedSort lendingstore.SortOrder,
) Query {

	return Query{
		Actor:           actor,
		Role:            role,
		DatePaidSort:    datePaidSort,
		DateCreatedSort: dateCreatedSort,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
