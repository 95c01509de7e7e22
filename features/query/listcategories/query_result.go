package listcategories

import (
	"github.com/bookwyrmhq/lending-backend-go/core"
)

// Categories is the result of the list categories query, ordered by name.
type Categories struct {
	Rows  []core.Category
	Count int
}
