package postgresengine

import (
	"context"
	"errors"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"

	"github.com/bookwyrmhq/lending-backend-go/core"
	"github.com/bookwyrmhq/lending-backend-go/lendingstore"
)

const (
	colBookTitle            = "title"
	colBookAuthor           = "author"
	colBookISBN             = "isbn"
	colBookCategoryID       = "category_id"
	colBookOriginalQuantity = "original_quantity"
	colBookCurrentQuantity  = "current_quantity"
	colBookLocation         = "location"
	colBookAddedBy          = "added_by_id"
	colBookDateAdded        = "date_added"

	opInsertBook        = "insert book"
	opGetBookForUpdate  = "select book for update"
	opUpdateBook        = "update book"
	opSearchBooks       = "search books"
	opDecrementQuantity = "decrement book quantity"
	opIncrementQuantity = "increment book quantity"
)

// InsertBook inserts a catalog entry and returns its generated id.
// A duplicate ISBN surfaces as lendingstore.ErrUniqueViolation.
func (t *storeTx) InsertBook(ctx context.Context, book core.Book) (core.BookIDInt64, error) {
	sqlQuery, args, buildErr := buildInsertBookQuery(book)
	if buildErr != nil {
		t.engine.logError(logMsgBuildQueryFailed, buildErr)
		return 0, buildErr
	}

	return t.queryRowID(ctx, opInsertBook, sqlQuery, args)
}

// GetBookForUpdate loads a book row and locks it for the rest of the transaction.
func (t *storeTx) GetBookForUpdate(ctx context.Context, id core.BookIDInt64) (core.Book, error) {
	sqlQuery, args, buildErr := buildSelectBookForUpdateQuery(id)
	if buildErr != nil {
		t.engine.logError(logMsgBuildQueryFailed, buildErr)
		return core.Book{}, buildErr
	}

	rows, queryErr := t.query(ctx, opGetBookForUpdate, sqlQuery, args)
	if queryErr != nil {
		return core.Book{}, queryErr
	}
	defer t.closeRows(rows)

	if !rows.Next() {
		return core.Book{}, lendingstore.ErrRecordNotFound
	}

	book, scanErr := scanBookWithExtra(rows)
	if scanErr != nil {
		t.engine.logError(logMsgScanRowFailed, scanErr)
		return core.Book{}, mapStorageError(scanErr)
	}

	return book, nil
}

func scanBookWithExtra(rows rowScanner, extra ...any) (core.Book, error) {
	var book core.Book

	dest := []any{
		&book.ID,
		&book.Title,
		&book.Author,
		&book.ISBN,
		&book.CategoryID,
		&book.OriginalQuantity,
		&book.CurrentQuantity,
		&book.Location,
		&book.AddedBy,
		&book.DateAdded,
	}
	dest = append(dest, extra...)

	if err := rows.Scan(dest...); err != nil {
		return core.Book{}, err
	}

	return book, nil
}

func bookColumns() []any {
	return []any{
		colID,
		colBookTitle,
		colBookAuthor,
		colBookISBN,
		colBookCategoryID,
		colBookOriginalQuantity,
		colBookCurrentQuantity,
		colBookLocation,
		colBookAddedBy,
		colBookDateAdded,
	}
}

func qualifiedBookColumns() []any {
	cols := bookColumns()
	qualified := make([]any, 0, len(cols))

	for _, col := range cols {
		qualified = append(qualified, goqu.I(tableBook+"."+col.(string)))
	}

	return qualified
}

// UpdateBook applies a partial update to a catalog entry. Zero affected rows
// means the book does not exist and surfaces as ErrRecordNotFound; changing
// the ISBN to one already in the catalog surfaces as ErrUniqueViolation.
func (t *storeTx) UpdateBook(ctx context.Context, id core.BookIDInt64, changes core.BookChanges) error {
	sqlQuery, args, buildErr := buildUpdateBookQuery(id, changes)
	if buildErr != nil {
		t.engine.logError(logMsgBuildQueryFailed, buildErr)
		return buildErr
	}

	rowsAffected, execErr := t.exec(ctx, opUpdateBook, sqlQuery, args)
	if execErr != nil {
		return execErr
	}

	if rowsAffected == 0 {
		return lendingstore.ErrRecordNotFound
	}

	return nil
}

// SearchBooks lists catalog entries joined with their category name,
// narrowed by the search filter and ordered by title.
func (t *storeTx) SearchBooks(
	ctx context.Context,
	filter lendingstore.BookSearchFilter,
) ([]lendingstore.CatalogBookRow, error) {
	sqlQuery, args, buildErr := buildSearchBooksQuery(filter)
	if buildErr != nil {
		t.engine.logError(logMsgBuildQueryFailed, buildErr)
		return nil, buildErr
	}

	rows, queryErr := t.query(ctx, opSearchBooks, sqlQuery, args)
	if queryErr != nil {
		return nil, queryErr
	}
	defer t.closeRows(rows)

	catalog := make([]lendingstore.CatalogBookRow, 0)

	for rows.Next() {
		var row lendingstore.CatalogBookRow

		book, scanErr := scanBookWithExtra(rows, &row.CategoryName)
		if scanErr != nil {
			t.engine.logError(logMsgScanRowFailed, scanErr)
			return nil, mapStorageError(scanErr)
		}

		row.Book = book
		catalog = append(catalog, row)
	}

	return catalog, nil
}

// DecrementBookQuantity takes one copy off the shelf. The guard in the
// statement keeps current_quantity from going negative; zero affected rows
// means the invariant would have been violated.
func (t *storeTx) DecrementBookQuantity(ctx context.Context, id core.BookIDInt64) error {
	sqlQuery, args, buildErr := buildDecrementBookQuantityQuery(id)
	if buildErr != nil {
		t.engine.logError(logMsgBuildQueryFailed, buildErr)
		return buildErr
	}

	rowsAffected, execErr := t.exec(ctx, opDecrementQuantity, sqlQuery, args)
	if execErr != nil {
		return execErr
	}

	if rowsAffected == 0 {
		return lendingstore.ErrQuantityInvariantViolated
	}

	return nil
}

// IncrementBookQuantity puts one copy back on the shelf, capped at
// original_quantity. Hitting the cap means a double return slipped through
// somewhere and is surfaced, never silently clamped.
func (t *storeTx) IncrementBookQuantity(ctx context.Context, id core.BookIDInt64) error {
	sqlQuery, args, buildErr := buildIncrementBookQuantityQuery(id)
	if buildErr != nil {
		t.engine.logError(logMsgBuildQueryFailed, buildErr)
		return buildErr
	}

	rowsAffected, execErr := t.exec(ctx, opIncrementQuantity, sqlQuery, args)
	if execErr != nil {
		return execErr
	}

	if rowsAffected == 0 {
		return lendingstore.ErrQuantityInvariantViolated
	}

	return nil
}

func buildInsertBookQuery(book core.Book) (sqlQueryString, []any, error) {
	insertStmt := builder.
		Insert(tableBook).
		Prepared(true).
		Rows(goqu.Record{
			colBookTitle:            book.Title,
			colBookAuthor:           book.Author,
			colBookISBN:             book.ISBN,
			colBookCategoryID:       book.CategoryID,
			colBookOriginalQuantity: book.OriginalQuantity,
			colBookCurrentQuantity:  book.CurrentQuantity,
			colBookLocation:         book.Location,
			colBookAddedBy:          book.AddedBy,
			colBookDateAdded:        book.DateAdded,
		}).
		Returning(colID)

	sqlQuery, args, toSQLErr := insertStmt.ToSQL()
	if toSQLErr != nil {
		return "", nil, errors.Join(lendingstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, args, nil
}

func buildSelectBookForUpdateQuery(id core.BookIDInt64) (sqlQueryString, []any, error) {
	selectStmt := builder.
		From(tableBook).
		Prepared(true).
		Select(bookColumns()...).
		Where(goqu.C(colID).Eq(id)).
		ForUpdate(exp.Wait)

	sqlQuery, args, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		return "", nil, errors.Join(lendingstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, args, nil
}

func buildUpdateBookQuery(id core.BookIDInt64, changes core.BookChanges) (sqlQueryString, []any, error) {
	record := goqu.Record{}

	if changes.Title != nil {
		record[colBookTitle] = *changes.Title
	}
	if changes.Author != nil {
		record[colBookAuthor] = *changes.Author
	}
	if changes.ISBN != nil {
		record[colBookISBN] = *changes.ISBN
	}
	if changes.CategoryID != nil {
		record[colBookCategoryID] = *changes.CategoryID
	}
	if changes.Quantity != nil {
		record[colBookCurrentQuantity] = *changes.Quantity
	}
	if changes.Location != nil {
		record[colBookLocation] = *changes.Location
	}

	if len(record) == 0 {
		return "", nil, lendingstore.ErrBuildingQueryFailed
	}

	updateStmt := builder.
		Update(tableBook).
		Prepared(true).
		Set(record).
		Where(goqu.C(colID).Eq(id))

	sqlQuery, args, toSQLErr := updateStmt.ToSQL()
	if toSQLErr != nil {
		return "", nil, errors.Join(lendingstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, args, nil
}

func buildSearchBooksQuery(filter lendingstore.BookSearchFilter) (sqlQueryString, []any, error) {
	cols := qualifiedBookColumns()
	cols = append(cols, goqu.I(tableCategory+"."+colCategoryName))

	selectStmt := builder.
		From(tableBook).
		Prepared(true).
		Join(
			goqu.T(tableCategory),
			goqu.On(goqu.I(tableBook+"."+colBookCategoryID).Eq(goqu.I(tableCategory+"."+colID))),
		).
		Select(cols...).
		Order(goqu.I(tableBook + "." + colBookTitle).Asc())

	matchers := make([]exp.Expression, 0, 4)
	if filter.Title != "" {
		matchers = append(matchers, goqu.I(tableBook+"."+colBookTitle).ILike("%"+filter.Title+"%"))
	}
	if filter.Author != "" {
		matchers = append(matchers, goqu.I(tableBook+"."+colBookAuthor).ILike("%"+filter.Author+"%"))
	}
	if filter.ISBN != "" {
		matchers = append(matchers, goqu.I(tableBook+"."+colBookISBN).ILike("%"+filter.ISBN+"%"))
	}
	if filter.CategoryName != "" {
		matchers = append(matchers, goqu.I(tableCategory+"."+colCategoryName).Eq(filter.CategoryName))
	}

	if len(matchers) > 0 {
		selectStmt = selectStmt.Where(goqu.Or(matchers...))
	}

	sqlQuery, args, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		return "", nil, errors.Join(lendingstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, args, nil
}

func buildDecrementBookQuantityQuery(id core.BookIDInt64) (sqlQueryString, []any, error) {
	updateStmt := builder.
		Update(tableBook).
		Prepared(true).
		Set(goqu.Record{
			colBookCurrentQuantity: goqu.L("? - 1", goqu.C(colBookCurrentQuantity)),
		}).
		Where(
			goqu.C(colID).Eq(id),
			goqu.C(colBookCurrentQuantity).Gt(0),
		)

	sqlQuery, args, toSQLErr := updateStmt.ToSQL()
	if toSQLErr != nil {
		return "", nil, errors.Join(lendingstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, args, nil
}

func buildIncrementBookQuantityQuery(id core.BookIDInt64) (sqlQueryString, []any, error) {
	updateStmt := builder.
		Update(tableBook).
		Prepared(true).
		Set(goqu.Record{
			colBookCurrentQuantity: goqu.L("? + 1", goqu.C(colBookCurrentQuantity)),
		}).
		Where(
			goqu.C(colID).Eq(id),
			goqu.C(colBookCurrentQuantity).Lt(goqu.C(colBookOriginalQuantity)),
		)

	sqlQuery, args, toSQLErr := updateStmt.ToSQL()
	if toSQLErr != nil {
		return "", nil, errors.Join(lendingstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, args, nil
}
