package searchbooks

const (
	queryType = "SearchBooks"
)

// Query represents the intent to list or search the book catalog. The catalog
// is public, so the query carries no actor. The text filters match as
// case-insensitive substrings and are combined with OR; CategoryName matches
// exactly. An empty query lists the whole catalog.
type Query struct {
	Title        string
	Author       string
	ISBN         string
	CategoryName string
}

// BuildQuery creates a new Query with the provided parameters.
func BuildQuery(title string, author string, isbn string, categoryName string) Query {
	return Query{
		Title:        title,
		Author:       author,
		ISBN:         isbn,
		CategoryName: categoryName,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
