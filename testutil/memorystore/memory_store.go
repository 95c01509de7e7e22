package memorystore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bookwyrmhq/lending-backend-go/core"
	"github.com/bookwyrmhq/lending-backend-go/lendingstore"
)

// MemoryStore is an in-memory implementation of lendingstore.TxRunner.
// Use NewMemoryStore to create one; the zero value is not usable.
type MemoryStore struct {
	mu    sync.Mutex
	state storeState

	// failTxWith, when set, makes the next WithinTx call fail with this
	// error before running fn. It is consumed by that call.
	failTxWith error
}

type storeState struct {
	books         map[core.BookIDInt64]core.Book
	borrows       map[core.BorrowIDInt64]core.Borrow
	fines         map[core.FineIDInt64]core.Fine
	users         map[core.UserIDInt64]core.UserAccount
	categories    map[int64]core.Category
	notifications map[int64]core.Notification
	auditRecords  []lendingstore.AuditRecord
	nextID        int64
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		state: storeState{
			books:         make(map[core.BookIDInt64]core.Book),
			borrows:       make(map[core.BorrowIDInt64]core.Borrow),
			fines:         make(map[core.FineIDInt64]core.Fine),
			users:         make(map[core.UserIDInt64]core.UserAccount),
			categories:    make(map[int64]core.Category),
			notifications: make(map[int64]core.Notification),
			auditRecords:  make([]lendingstore.AuditRecord, 0),
			nextID:        0,
		},
	}
}

// WithinTx implements lendingstore.TxRunner.
// fn runs against a copy of the store state; the copy replaces the state only
// when fn returns nil, so an error discards all of the transaction's writes.
func (s *MemoryStore) WithinTx(ctx context.Context, fn func(tx lendingstore.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failTxWith != nil {
		err := s.failTxWith
		s.failTxWith = nil

		return err
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	tx := &memoryTx{state: s.state.clone()}

	if err := fn(tx); err != nil {
		return err
	}

	s.state = tx.state

	return nil
}

// FailNextTxWith makes the next WithinTx call fail with err before running fn,
// simulating a transaction that could not be started or committed.
func (s *MemoryStore) FailNextTxWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failTxWith = err
}

/*** Seeding helpers for arranging test state outside a transaction ***/

// SeedUser stores the user and returns the assigned id.
func (s *MemoryStore) SeedUser(user core.UserAccount) core.UserIDInt64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user.ID == 0 {
		user.ID = s.state.assignID()
	}
	s.state.users[user.ID] = user

	return user.ID
}

// SeedBook stores the book and returns the assigned id.
func (s *MemoryStore) SeedBook(book core.Book) core.BookIDInt64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if book.ID == 0 {
		book.ID = s.state.assignID()
	}
	s.state.books[book.ID] = book

	return book.ID
}

// SeedCategory stores the category and returns the assigned id.
func (s *MemoryStore) SeedCategory(category core.Category) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if category.ID == 0 {
		category.ID = s.state.assignID()
	}
	s.state.categories[category.ID] = category

	return category.ID
}

// SeedBorrow stores the borrow and returns the assigned id.
func (s *MemoryStore) SeedBorrow(borrow core.Borrow) core.BorrowIDInt64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if borrow.ID == 0 {
		borrow.ID = s.state.assignID()
	}
	s.state.borrows[borrow.ID] = borrow

	return borrow.ID
}

// SeedFine stores the fine and returns the assigned id.
func (s *MemoryStore) SeedFine(fine core.Fine) core.FineIDInt64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if fine.ID == 0 {
		fine.ID = s.state.assignID()
	}
	s.state.fines[fine.ID] = fine

	return fine.ID
}

// SeedNotification stores the notification and returns the assigned id.
func (s *MemoryStore) SeedNotification(notification core.Notification) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if notification.ID == 0 {
		notification.ID = s.state.assignID()
	}
	s.state.notifications[notification.ID] = notification

	return notification.ID
}

/*** Inspection helpers for asserting on committed state ***/

// BookByID returns the committed book and whether it exists.
func (s *MemoryStore) BookByID(id core.BookIDInt64) (core.Book, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.state.books[id]

	return book, ok
}

// BorrowByID returns the committed borrow and whether it exists.
func (s *MemoryStore) BorrowByID(id core.BorrowIDInt64) (core.Borrow, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	borrow, ok := s.state.borrows[id]

	return borrow, ok
}

// FineByID returns the committed fine and whether it exists.
func (s *MemoryStore) FineByID(id core.FineIDInt64) (core.Fine, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fine, ok := s.state.fines[id]

	return fine, ok
}

// UserByID returns the committed user and whether it exists.
func (s *MemoryStore) UserByID(id core.UserIDInt64) (core.UserAccount, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.state.users[id]

	return user, ok
}

// UserByEmail returns the committed user with this email and whether it exists.
func (s *MemoryStore) UserByEmail(email string) (core.UserAccount, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.state.users {
		if user.Email == email {
			return user, true
		}
	}

	return core.UserAccount{}, false
}

// AllFines returns all committed fines, ordered by id.
func (s *MemoryStore) AllFines() []core.Fine {
	s.mu.Lock()
	defer s.mu.Unlock()

	fines := make([]core.Fine, 0, len(s.state.fines))
	for _, fine := range s.state.fines {
		fines = append(fines, fine)
	}
	sort.Slice(fines, func(i, j int) bool { return fines[i].ID < fines[j].ID })

	return fines
}

// AllNotifications returns all committed notifications, ordered by id.
func (s *MemoryStore) AllNotifications() []core.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	notifications := make([]core.Notification, 0, len(s.state.notifications))
	for _, notification := range s.state.notifications {
		notifications = append(notifications, notification)
	}
	sort.Slice(notifications, func(i, j int) bool { return notifications[i].ID < notifications[j].ID })

	return notifications
}

// AllCategories returns all committed categories, ordered by id.
func (s *MemoryStore) AllCategories() []core.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	categories := make([]core.Category, 0, len(s.state.categories))
	for _, category := range s.state.categories {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })

	return categories
}

// AuditRecords returns all committed audit records in append order.
func (s *MemoryStore) AuditRecords() []lendingstore.AuditRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]lendingstore.AuditRecord, len(s.state.auditRecords))
	copy(records, s.state.auditRecords)

	return records
}

func (st *storeState) assignID() int64 {
	st.nextID++
	return st.nextID
}

func (st storeState) clone() storeState {
	clone := storeState{
		books:         make(map[core.BookIDInt64]core.Book, len(st.books)),
		borrows:       make(map[core.BorrowIDInt64]core.Borrow, len(st.borrows)),
		fines:         make(map[core.FineIDInt64]core.Fine, len(st.fines)),
		users:         make(map[core.UserIDInt64]core.UserAccount, len(st.users)),
		categories:    make(map[int64]core.Category, len(st.categories)),
		notifications: make(map[int64]core.Notification, len(st.notifications)),
		auditRecords:  make([]lendingstore.AuditRecord, len(st.auditRecords)),
		nextID:        st.nextID,
	}

	for id, book := range st.books {
		clone.books[id] = book
	}
	for id, borrow := range st.borrows {
		clone.borrows[id] = borrow
	}
	for id, fine := range st.fines {
		clone.fines[id] = fine
	}
	for id, user := range st.users {
		clone.users[id] = user
	}
	for id, category := range st.categories {
		clone.categories[id] = category
	}
	for id, notification := range st.notifications {
		clone.notifications[id] = notification
	}
	copy(clone.auditRecords, st.auditRecords)

	return clone
}

// memoryTx implements lendingstore.Tx over one transaction's state copy.
type memoryTx struct {
	state storeState
}

var _ lendingstore.TxRunner = (*MemoryStore)(nil)
var _ lendingstore.Tx = (*memoryTx)(nil)

/*** BookStore ***/

func (t *memoryTx) InsertBook(_ context.Context, book core.Book) (core.BookIDInt64, error) {
	for _, existing := range t.state.books {
		if existing.ISBN == book.ISBN {
			return 0, lendingstore.ErrUniqueViolation
		}
	}

	book.ID = t.state.assignID()
	t.state.books[book.ID] = book

	return book.ID, nil
}

func (t *memoryTx) GetBookForUpdate(_ context.Context, id core.BookIDInt64) (core.Book, error) {
	book, ok := t.state.books[id]
	if !ok {
		return core.Book{}, lendingstore.ErrRecordNotFound
	}

	return book, nil
}

func (t *memoryTx) UpdateBook(_ context.Context, id core.BookIDInt64, changes core.BookChanges) error {
	book, ok := t.state.books[id]
	if !ok {
		return lendingstore.ErrRecordNotFound
	}

	if changes.ISBN != nil {
		for otherID, existing := range t.state.books {
			if otherID != id && existing.ISBN == *changes.ISBN {
				return lendingstore.ErrUniqueViolation
			}
		}
		book.ISBN = *changes.ISBN
	}
	if changes.Title != nil {
		book.Title = *changes.Title
	}
	if changes.Author != nil {
		book.Author = *changes.Author
	}
	if changes.CategoryID != nil {
		book.CategoryID = *changes.CategoryID
	}
	if changes.Quantity != nil {
		book.CurrentQuantity = *changes.Quantity
	}
	if changes.Location != nil {
		book.Location = *changes.Location
	}

	t.state.books[id] = book

	return nil
}

func (t *memoryTx) SearchBooks(
	_ context.Context,
	filter lendingstore.BookSearchFilter,
) ([]lendingstore.CatalogBookRow, error) {
	rows := make([]lendingstore.CatalogBookRow, 0)

	for _, book := range t.state.books {
		categoryName := t.state.categories[book.CategoryID].Name
		if !matchesSearch(book, categoryName, filter) {
			continue
		}

		rows = append(rows, lendingstore.CatalogBookRow{Book: book, CategoryName: categoryName})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Book.Title < rows[j].Book.Title })

	return rows, nil
}

func (t *memoryTx) DecrementBookQuantity(_ context.Context, id core.BookIDInt64) error {
	book, ok := t.state.books[id]
	if !ok || book.CurrentQuantity-1 < 0 {
		return lendingstore.ErrQuantityInvariantViolated
	}

	book.CurrentQuantity--
	t.state.books[id] = book

	return nil
}

func (t *memoryTx) IncrementBookQuantity(_ context.Context, id core.BookIDInt64) error {
	book, ok := t.state.books[id]
	if !ok || book.CurrentQuantity+1 > book.OriginalQuantity {
		return lendingstore.ErrQuantityInvariantViolated
	}

	book.CurrentQuantity++
	t.state.books[id] = book

	return nil
}

/*** BorrowStore ***/

func (t *memoryTx) InsertBorrow(_ context.Context, borrow core.Borrow) (core.BorrowIDInt64, error) {
	borrow.ID = t.state.assignID()
	t.state.borrows[borrow.ID] = borrow

	return borrow.ID, nil
}

func (t *memoryTx) GetBorrowForUpdate(_ context.Context, id core.BorrowIDInt64) (core.Borrow, error) {
	borrow, ok := t.state.borrows[id]
	if !ok {
		return core.Borrow{}, lendingstore.ErrRecordNotFound
	}

	return borrow, nil
}

func (t *memoryTx) CountOpenBorrowsOf(_ context.Context, userID core.UserIDInt64) (int, error) {
	count := 0
	for _, borrow := range t.state.borrows {
		if borrow.BorrowedBy == userID && borrow.IsOpen() {
			count++
		}
	}

	return count, nil
}

func (t *memoryTx) MarkBorrowReturned(
	_ context.Context,
	id core.BorrowIDInt64,
	returnDate time.Time,
	receivedBy core.UserIDInt64,
) error {
	borrow, ok := t.state.borrows[id]
	if !ok || borrow.IsReturned {
		return lendingstore.ErrRecordNotFound
	}

	borrow.IsReturned = true
	borrow.ReturnDate = &returnDate
	borrow.ReceivedBy = &receivedBy
	t.state.borrows[id] = borrow

	return nil
}

func (t *memoryTx) BorrowsOf(_ context.Context, userID core.UserIDInt64) ([]core.Borrow, error) {
	borrows := make([]core.Borrow, 0)
	for _, borrow := range t.state.borrows {
		if borrow.BorrowedBy == userID {
			borrows = append(borrows, borrow)
		}
	}
	sort.Slice(borrows, func(i, j int) bool {
		return borrows[i].BorrowDate.Before(borrows[j].BorrowDate)
	})

	return borrows, nil
}

func (t *memoryTx) OpenOverdueBorrows(
	_ context.Context,
	filter lendingstore.OverdueReportFilter,
) ([]lendingstore.OverdueBorrowRow, error) {
	rows := make([]lendingstore.OverdueBorrowRow, 0)

	for _, borrow := range t.state.borrows {
		if !borrow.IsOpen() || !isOverdue(borrow.DueDate, filter.AsOf) {
			continue
		}

		role := t.state.users[borrow.BorrowedBy].Role
		if filter.Role != "" && role != filter.Role {
			continue
		}

		rows = append(rows, lendingstore.OverdueBorrowRow{Borrow: borrow, BorrowerRole: role})
	}

	sortRows := func(less func(i, j int) bool) { sort.Slice(rows, less) }
	switch filter.DueDateSort {
	case lendingstore.SortAsc:
		sortRows(func(i, j int) bool { return rows[i].Borrow.DueDate.Before(rows[j].Borrow.DueDate) })
	case lendingstore.SortDesc:
		sortRows(func(i, j int) bool { return rows[j].Borrow.DueDate.Before(rows[i].Borrow.DueDate) })
	case lendingstore.SortNone:
		sortRows(func(i, j int) bool { return rows[i].Borrow.ID < rows[j].Borrow.ID })
	}

	return rows, nil
}

func (t *memoryTx) OpenOverdueBorrowsWithoutFine(_ context.Context, asOf time.Time) ([]core.Borrow, error) {
	borrows := make([]core.Borrow, 0)

	for _, borrow := range t.state.borrows {
		if !borrow.IsOpen() || !isOverdue(borrow.DueDate, asOf) {
			continue
		}
		if t.fineExistsForBorrow(borrow.ID) {
			continue
		}

		borrows = append(borrows, borrow)
	}
	sort.Slice(borrows, func(i, j int) bool { return borrows[i].ID < borrows[j].ID })

	return borrows, nil
}

func (t *memoryTx) BorrowingTrends(
	_ context.Context,
	filter lendingstore.BorrowingTrendsFilter,
) ([]core.Borrow, error) {
	borrows := make([]core.Borrow, 0)

	for _, borrow := range t.state.borrows {
		if filter.Role != "" && t.state.users[borrow.BorrowedBy].Role != filter.Role {
			continue
		}
		if filter.CategoryID != 0 && t.state.books[borrow.BookID].CategoryID != filter.CategoryID {
			continue
		}
		if !matchesTimeWindow(borrow.BorrowDate, filter.AsOf, filter.TimeWindow) {
			continue
		}

		borrows = append(borrows, borrow)
	}
	sort.Slice(borrows, func(i, j int) bool {
		return borrows[i].BorrowDate.Before(borrows[j].BorrowDate)
	})

	return borrows, nil
}

/*** FineStore ***/

func (t *memoryTx) InsertFine(_ context.Context, fine core.Fine) (core.FineIDInt64, error) {
	if t.fineExistsForBorrow(fine.BorrowID) {
		return 0, lendingstore.ErrUniqueViolation
	}

	fine.ID = t.state.assignID()
	t.state.fines[fine.ID] = fine

	return fine.ID, nil
}

func (t *memoryTx) GetUnpaidFineForUpdate(
	_ context.Context,
	id core.FineIDInt64,
) (lendingstore.FineWithBorrower, error) {
	fine, ok := t.state.fines[id]
	if !ok || fine.Paid {
		return lendingstore.FineWithBorrower{}, lendingstore.ErrRecordNotFound
	}

	return lendingstore.FineWithBorrower{
		Fine:       fine,
		BorrowedBy: t.state.borrows[fine.BorrowID].BorrowedBy,
	}, nil
}

func (t *memoryTx) FineExistsForBorrow(_ context.Context, borrowID core.BorrowIDInt64) (bool, error) {
	return t.fineExistsForBorrow(borrowID), nil
}

func (t *memoryTx) MarkFinePaid(
	_ context.Context,
	id core.FineIDInt64,
	paidAt time.Time,
	method core.PaymentMethod,
	transactionID *string,
	collectedBy *core.UserIDInt64,
) error {
	fine, ok := t.state.fines[id]
	if !ok || fine.Paid {
		return lendingstore.ErrRecordNotFound
	}

	fine.Paid = true
	fine.DatePaid = &paidAt
	fine.PaymentMethod = &method
	fine.TransactionID = transactionID
	fine.CollectedBy = collectedBy
	t.state.fines[id] = fine

	return nil
}

func (t *memoryTx) FinesOf(_ context.Context, userID core.UserIDInt64) ([]core.Fine, error) {
	fines := make([]core.Fine, 0)
	for _, fine := range t.state.fines {
		if t.state.borrows[fine.BorrowID].BorrowedBy == userID {
			fines = append(fines, fine)
		}
	}
	sort.Slice(fines, func(i, j int) bool {
		return fines[i].DateCreated.Before(fines[j].DateCreated)
	})

	return fines, nil
}

func (t *memoryTx) FineTotalsOf(_ context.Context, userID core.UserIDInt64) (lendingstore.FineTotals, error) {
	var totals lendingstore.FineTotals

	for _, fine := range t.state.fines {
		if t.state.borrows[fine.BorrowID].BorrowedBy != userID {
			continue
		}
		if fine.Paid {
			totals.Paid += fine.Amount
		} else {
			totals.Unpaid += fine.Amount
		}
	}

	return totals, nil
}

func (t *memoryTx) CollectedFines(
	_ context.Context,
	filter lendingstore.CollectedFinesFilter,
) ([]lendingstore.CollectedFineRow, error) {
	rows := make([]lendingstore.CollectedFineRow, 0)

	for _, fine := range t.state.fines {
		if !fine.Paid {
			continue
		}

		borrowedBy := t.state.borrows[fine.BorrowID].BorrowedBy
		role := t.state.users[borrowedBy].Role
		if filter.Role != "" && role != filter.Role {
			continue
		}

		rows = append(rows, lendingstore.CollectedFineRow{
			Fine:         fine,
			BorrowedBy:   borrowedBy,
			BorrowerRole: role,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if cmp := compareByOrder(datePaidOf(rows[i].Fine), datePaidOf(rows[j].Fine), filter.DatePaidSort); cmp != 0 {
			return cmp < 0
		}
		if cmp := compareByOrder(rows[i].Fine.DateCreated, rows[j].Fine.DateCreated, filter.DateCreatedSort); cmp != 0 {
			return cmp < 0
		}

		return rows[i].Fine.ID < rows[j].Fine.ID
	})

	return rows, nil
}

/*** UserStore ***/

func (t *memoryTx) InsertUser(_ context.Context, user core.UserAccount) (core.UserIDInt64, error) {
	for _, existing := range t.state.users {
		if existing.Email == user.Email {
			return 0, lendingstore.ErrUniqueViolation
		}
	}

	user.ID = t.state.assignID()
	t.state.users[user.ID] = user

	return user.ID, nil
}

func (t *memoryTx) EmailExists(_ context.Context, email string) (bool, error) {
	for _, user := range t.state.users {
		if user.Email == email {
			return true, nil
		}
	}

	return false, nil
}

func (t *memoryTx) SetUserRoleByEmail(_ context.Context, email string, role core.Role) error {
	for id, user := range t.state.users {
		if user.Email == email {
			user.Role = role
			t.state.users[id] = user

			return nil
		}
	}

	return lendingstore.ErrRecordNotFound
}

/*** CategoryStore ***/

func (t *memoryTx) InsertCategory(_ context.Context, category core.Category) (int64, error) {
	for _, existing := range t.state.categories {
		if existing.Name == category.Name {
			return 0, lendingstore.ErrUniqueViolation
		}
	}

	category.ID = t.state.assignID()
	t.state.categories[category.ID] = category

	return category.ID, nil
}

func (t *memoryTx) ListCategories(_ context.Context) ([]core.Category, error) {
	categories := make([]core.Category, 0, len(t.state.categories))
	for _, category := range t.state.categories {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })

	return categories, nil
}

/*** NotificationStore ***/

func (t *memoryTx) InsertNotification(_ context.Context, notification core.Notification) error {
	notification.ID = t.state.assignID()
	t.state.notifications[notification.ID] = notification

	return nil
}

func (t *memoryTx) MarkNotificationRead(_ context.Context, id int64, userID core.UserIDInt64) error {
	notification, ok := t.state.notifications[id]
	if !ok || notification.UserID != userID || notification.IsRead {
		return lendingstore.ErrRecordNotFound
	}

	notification.IsRead = true
	t.state.notifications[id] = notification

	return nil
}

func (t *memoryTx) UnreadNotificationsOf(_ context.Context, userID core.UserIDInt64) ([]core.Notification, error) {
	notifications := make([]core.Notification, 0)
	for _, notification := range t.state.notifications {
		if notification.UserID == userID && !notification.IsRead {
			notifications = append(notifications, notification)
		}
	}
	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].SentDate.Before(notifications[j].SentDate)
	})

	return notifications, nil
}

/*** AuditLog ***/

func (t *memoryTx) AppendAuditRecord(_ context.Context, record lendingstore.AuditRecord) error {
	t.state.auditRecords = append(t.state.auditRecords, record)

	return nil
}

func (t *memoryTx) fineExistsForBorrow(borrowID core.BorrowIDInt64) bool {
	for _, fine := range t.state.fines {
		if fine.BorrowID == borrowID {
			return true
		}
	}

	return false
}

// matchesSearch mirrors the engine's catalog search: the text filters are
// case-insensitive substring matches combined with OR, the category name is
// an exact match, and an empty filter matches everything.
func matchesSearch(book core.Book, categoryName string, filter lendingstore.BookSearchFilter) bool {
	if filter.Title == "" && filter.Author == "" && filter.ISBN == "" && filter.CategoryName == "" {
		return true
	}

	containsFold := func(s, substr string) bool {
		return substr != "" && strings.Contains(strings.ToLower(s), strings.ToLower(substr))
	}

	return containsFold(book.Title, filter.Title) ||
		containsFold(book.Author, filter.Author) ||
		containsFold(book.ISBN, filter.ISBN) ||
		(filter.CategoryName != "" && categoryName == filter.CategoryName)
}

// matchesTimeWindow mirrors the engine's EXTRACT comparison: only the selected
// calendar component of the borrow date is compared with the reference time.
func matchesTimeWindow(borrowDate time.Time, asOf time.Time, window lendingstore.TimeWindow) bool {
	switch window {
	case lendingstore.TimeWindowDay:
		return borrowDate.Day() == asOf.Day()
	case lendingstore.TimeWindowWeek:
		_, borrowWeek := borrowDate.ISOWeek()
		_, asOfWeek := asOf.ISOWeek()
		return borrowWeek == asOfWeek
	case lendingstore.TimeWindowMonth:
		return borrowDate.Month() == asOf.Month()
	case lendingstore.TimeWindowYear:
		return borrowDate.Year() == asOf.Year()
	case lendingstore.TimeWindowNone:
		return true
	default:
		return true
	}
}

// isOverdue mirrors the engine's date-only comparison: the due date must
// strictly precede the reference date, time of day ignored.
func isOverdue(dueDate time.Time, asOf time.Time) bool {
	return core.AssessOverdue(dueDate, asOf, 0).Overdue
}

func datePaidOf(fine core.Fine) time.Time {
	if fine.DatePaid == nil {
		return time.Time{}
	}

	return *fine.DatePaid
}

func compareByOrder(a time.Time, b time.Time, order lendingstore.SortOrder) int {
	if order == lendingstore.SortNone || a.Equal(b) {
		return 0
	}

	if order == lendingstore.SortAsc {
		if a.Before(b) {
			return -1
		}
		return 1
	}

	if a.After(b) {
		return -1
	}
	return 1
}
