package core

// Category is pure reference data for books.
type Category struct {
	ID      int64
	Name    string
	AddedBy UserIDInt64
}
