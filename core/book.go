package core

import (
	"time"
)

// Book is a catalog entry with its copy counts.
//
// Invariant: 0 <= CurrentQuantity <= OriginalQuantity. CurrentQuantity is
// decremented on borrow and incremented on return; availability is derived
// from it and never stored independently.
type Book struct {
	ID               BookIDInt64
	Title            string
	Author           string
	ISBN             string
	CategoryID       int64
	OriginalQuantity int
	CurrentQuantity  int
	Location         string
	AddedBy          UserIDInt64
	DateAdded        time.Time
}

// IsAvailable reports whether at least one copy is on the shelf.
// It is a pure function of CurrentQuantity, recomputed on every read.
func (b Book) IsAvailable() bool {
	return b.CurrentQuantity > 0
}
