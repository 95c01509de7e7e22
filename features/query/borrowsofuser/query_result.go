package borrowsofuser

import (
	"github.com/bookwyrmhq/lending-backend-go/core"
)

// UserBorrows represents the query result containing all borrows of one user,
// open and returned alike.
type UserBorrows struct {
	UserID  core.UserIDInt64
	Borrows []core.Borrow
	Count   int
}
