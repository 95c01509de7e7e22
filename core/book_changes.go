package core

// BookChanges carries a partial update for one catalog entry; nil fields stay
// unchanged. Quantity updates the current quantity only (a stock correction);
// the original quantity is fixed at catalog time.
type BookChanges struct {
	Title      *string
	Author     *string
	ISBN       *string
	CategoryID *int64
	Quantity   *int
	Location   *string
}

// IsEmpty reports whether no field is set.
func (c BookChanges) IsEmpty() bool {
	return c.Title == nil &&
		c.Author == nil &&
		c.ISBN == nil &&
		c.CategoryID == nil &&
		c.Quantity == nil &&
		c.Location == nil
}

// FieldNames lists the set fields, for the audit trail.
func (c BookChanges) FieldNames() []string {
	names := make([]string, 0, 6)

	if c.Title != nil {
		names = append(names, "title")
	}
	if c.Author != nil {
		names = append(names, "author")
	}
	if c.ISBN != nil {
		names = append(names, "isbn")
	}
	if c.CategoryID != nil {
		names = append(names, "category_id")
	}
	if c.Quantity != nil {
		names = append(names, "quantity")
	}
	if c.Location != nil {
		names = append(names, "location")
	}

	return names
}
