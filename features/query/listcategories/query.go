package listcategories

const (
	queryType = "ListCategories"
)

// Query represents the intent to list all book categories. The category
// reference data is public, so the query carries no actor and no filters.
type Query struct{}

// BuildQuery creates a new Query.
func BuildQuery() Query {
	return Query{}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
