package searchbooks

import (
	"github.com/bookwyrmhq/lending-backend-go/lendingstore"
)

// Catalog is the result of the search books query, ordered by title.
// Rows carry the category name so a listing needs no second lookup.
type Catalog struct {
	Rows  []lendingstore.CatalogBookRow
	Count int
}
