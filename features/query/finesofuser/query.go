package finesofuser

import (
	"github.com/bookwyrmhq/lending-backend-go/core"
)

const (
	queryType = "FinesOfUser"
)

// Query represents the intent to list all fines of one user with their totals.
type Query struct {
	Actor  core.Actor
	UserID core.UserIDInt64
}

// BuildQuery creates a new Query with the provided parameters.
func BuildQuery(actor core.Actor, userID core.UserIDInt64) Query {
	return Query{
		Actor:  actor,
		UserID: userID,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
