package lendingstore

import (
	"context"
	"time"

	"github.com/bookwyrmhq/lending-backend-go/core"
)

// SortOrder selects the ordering of report rows.
type SortOrder string

// The supported sort orders; the zero value leaves the store order unspecified.
const (
	SortNone SortOrder = ""
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// TimeWindow selects which calendar component of the borrow date is compared
// against the reference time in the borrowing-trends report.
type TimeWindow string

// The supported time windows; the zero value applies no time filter.
const (
	TimeWindowNone  TimeWindow = ""
	TimeWindowDay   TimeWindow = "day"
	TimeWindowWeek  TimeWindow = "week"
	TimeWindowMonth TimeWindow = "month"
	TimeWindowYear  TimeWindow = "year"
)

// BorrowingTrendsFilter narrows the borrowing-trends report.
type BorrowingTrendsFilter struct {
	AsOf       time.Time
	Role       core.Role  // empty means all roles
	TimeWindow TimeWindow // zero means all time
	CategoryID int64      // zero means all categories
}

// BookSearchFilter narrows the catalog listing. The text filters match as
// case-insensitive substrings and are combined with OR, like a search box;
// CategoryName matches exactly. An empty filter lists the whole catalog.
type BookSearchFilter struct {
	Title        string
	Author       string
	ISBN         string
	CategoryName string
}

// CatalogBookRow is one catalog listing line: the book joined with the name
// of its category.
type CatalogBookRow struct {
	Book         core.Book
	CategoryName string
}

// OverdueReportFilter narrows and orders the overdue-borrows report.
type OverdueReportFilter struct {
	AsOf        time.Time
	Role        core.Role // empty means all roles
	DueDateSort SortOrder
}

// OverdueBorrowRow is one line of the overdue-borrows report.
type OverdueBorrowRow struct {
	Borrow       core.Borrow
	BorrowerRole core.Role
}

// CollectedFinesFilter narrows and orders the collected-fines report.
type CollectedFinesFilter struct {
	Role            core.Role // empty means all roles
	DatePaidSort    SortOrder
	DateCreatedSort SortOrder
}

// CollectedFineRow is one line of the collected-fines report.
type CollectedFineRow struct {
	Fine         core.Fine
	BorrowedBy   core.UserIDInt64
	BorrowerRole core.Role
}

// FineWithBorrower is a fine joined with the borrower of its underlying borrow,
// needed by the payment authorization rules.
type FineWithBorrower struct {
	Fine       core.Fine
	BorrowedBy core.UserIDInt64
}

// FineTotals are the paid/unpaid sums for one user's fines.
type FineTotals struct {
	Paid   float64
	Unpaid float64
}

// BookStore is the inventory-ledger slice of a transaction.
// The quantity mutations carry their invariant in the statement itself:
// a decrement below zero or an increment past original_quantity affects no
// rows and surfaces ErrQuantityInvariantViolated.
type BookStore interface {
	InsertBook(ctx context.Context, book core.Book) (core.BookIDInt64, error)
	GetBookForUpdate(ctx context.Context, id core.BookIDInt64) (core.Book, error)
	UpdateBook(ctx context.Context, id core.BookIDInt64, changes core.BookChanges) error
	SearchBooks(ctx context.Context, filter BookSearchFilter) ([]CatalogBookRow, error)
	DecrementBookQuantity(ctx context.Context, id core.BookIDInt64) error
	IncrementBookQuantity(ctx context.Context, id core.BookIDInt64) error
}

// BorrowStore is the loan-lifecycle slice of a transaction.
type BorrowStore interface {
	InsertBorrow(ctx context.Context, borrow core.Borrow) (core.BorrowIDInt64, error)
	GetBorrowForUpdate(ctx context.Context, id core.BorrowIDInt64) (core.Borrow, error)
	CountOpenBorrowsOf(ctx context.Context, userID core.UserIDInt64) (int, error)
	MarkBorrowReturned(ctx context.Context, id core.BorrowIDInt64, returnDate time.Time, receivedBy core.UserIDInt64) error
	BorrowsOf(ctx context.Context, userID core.UserIDInt64) ([]core.Borrow, error)
	OpenOverdueBorrows(ctx context.Context, filter OverdueReportFilter) ([]OverdueBorrowRow, error)
	OpenOverdueBorrowsWithoutFine(ctx context.Context, asOf time.Time) ([]core.Borrow, error)
	BorrowingTrends(ctx context.Context, filter BorrowingTrendsFilter) ([]core.Borrow, error)
}

// FineStore is the fine-assessment and payment slice of a transaction.
type FineStore interface {
	InsertFine(ctx context.Context, fine core.Fine) (core.FineIDInt64, error)
	GetUnpaidFineForUpdate(ctx context.Context, id core.FineIDInt64) (FineWithBorrower, error)
	FineExistsForBorrow(ctx context.Context, borrowID core.BorrowIDInt64) (bool, error)
	MarkFinePaid(
		ctx context.Context,
		id core.FineIDInt64,
		paidAt time.Time,
		method core.PaymentMethod,
		transactionID *string,
		collectedBy *core.UserIDInt64,
	) error
	FinesOf(ctx context.Context, userID core.UserIDInt64) ([]core.Fine, error)
	FineTotalsOf(ctx context.Context, userID core.UserIDInt64) (FineTotals, error)
	CollectedFines(ctx context.Context, filter CollectedFinesFilter) ([]CollectedFineRow, error)
}

// UserStore is the actor-registry slice of a transaction.
type UserStore interface {
	InsertUser(ctx context.Context, user core.UserAccount) (core.UserIDInt64, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	SetUserRoleByEmail(ctx context.Context, email string, role core.Role) error
}

// CategoryStore is the catalog-reference slice of a transaction.
type CategoryStore interface {
	InsertCategory(ctx context.Context, category core.Category) (int64, error)
	ListCategories(ctx context.Context) ([]core.Category, error)
}

// NotificationStore is the notification-sink slice of a transaction.
// Notifications piggyback on the surrounding transaction; the lifecycle
// operations do not depend on delivery beyond the insert.
type NotificationStore interface {
	InsertNotification(ctx context.Context, notification core.Notification) error
	MarkNotificationRead(ctx context.Context, id int64, userID core.UserIDInt64) error
	UnreadNotificationsOf(ctx context.Context, userID core.UserIDInt64) ([]core.Notification, error)
}

// AuditLog appends domain-event audit records within a transaction.
type AuditLog interface {
	AppendAuditRecord(ctx context.Context, record AuditRecord) error
}

// Tx is the full store surface available inside one transaction.
// Command handlers declare the narrow subset they actually need.
type Tx interface {
	BookStore
	BorrowStore
	FineStore
	UserStore
	CategoryStore
	NotificationStore
	AuditLog
}

// TxRunner executes fn inside one atomic transaction: everything commits
// together or rolls back entirely when fn returns an error.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(tx Tx) error) error
}
