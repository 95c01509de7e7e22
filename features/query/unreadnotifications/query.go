package unreadnotifications

import (
	"github.com/bookwyrmhq/lending-backend-go/core"
)

const (
	queryType = "UnreadNotifications"
)

// Query represents the intent of a user to list their own unread notifications.
type Query struct {
	Actor core.Actor
}

// BuildQuery creates a new Query with the provided parameters.
func BuildQuery(actor core.Actor) Query {
	return Query{
		Actor: actor,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
