package postgresengine

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"

	"github.com/bookwyrmhq/lending-backend-go/core"
	"github.com/bookwyrmhq/lending-backend-go/lendingstore"
)

const (
	colBorrowBookID     = "book_id"
	colBorrowBorrowedBy = "borrowed_by_id"
	colBorrowGivenBy    = "given_by_id"
	colBorrowReceivedBy = "received_by_id"
	colBorrowDate       = "borrow_date"
	colBorrowDueDate    = "due_date"
	colBorrowReturnDate = "return_date"
	colBorrowIsReturned = "is_returned"
	colBorrowComments   = "comments"

	opInsertBorrow        = "insert borrow"
	opGetBorrowForUpdate  = "select borrow for update"
	opCountOpenBorrows    = "count open borrows"
	opMarkBorrowReturned  = "mark borrow returned"
	opSelectBorrowsOfUser = "select borrows of user"
	opSelectOverdue       = "select open overdue borrows"
	opSelectTrends        = "select borrowing trends"
)

// InsertBorrow creates an OPEN borrow record and returns its generated id.
func (t *storeTx) InsertBorrow(ctx context.Context, borrow core.Borrow) (core.BorrowIDInt64, error) {
	sqlQuery, args, buildErr := buildInsertBorrowQuery(borrow)
	if buildErr != nil {
		t.engine.logError(logMsgBuildQueryFailed, buildErr)
		return 0, buildErr
	}

	return t.queryRowID(ctx, opInsertBorrow, sqlQuery, args)
}

// GetBorrowForUpdate loads a borrow row and locks it for the rest of the transaction.
func (t *storeTx) GetBorrowForUpdate(ctx context.Context, id core.BorrowIDInt64) (core.Borrow, error) {
	sqlQuery, args, buildErr := buildSelectBorrowForUpdateQuery(id)
	if buildErr != nil {
		t.engine.logError(logMsgBuildQueryFailed, buildErr)
		return core.Borrow{}, buildErr
	}

	rows, queryErr := t.query(ctx, opGetBorrowForUpdate, sqlQuery, args)
	if queryErr != nil {
		return core.Borrow{}, queryErr
	}
	defer t.closeRows(rows)

	if !rows.Next() {
		return core.Borrow{}, lendingstore.ErrRecordNotFound
	}

	borrow, scanErr := scanBorrow(rows)
	if scanErr != nil {
		t.engine.logError(logMsgScanRowFailed, scanErr)
		return core.Borrow{}, mapStorageError(scanErr)
	}

	return borrow, nil
}

// CountOpenBorrowsOf counts the OPEN borrows of one user.
func (t *storeTx) CountOpenBorrowsOf(ctx context.Context, userID core.UserIDInt64) (int, error) {
	sqlQuery, args, buildErr := buildCountOpenBorrowsQuery(userID)
	if buildErr != nil {
		t.engine.logError(logMsgBuildQueryFailed, buildErr)
		return 0, buildErr
	}

	rows, queryErr := t.query(ctx, opCountOpenBorrows, sqlQuery, args)
	if queryErr != nil {
		return 0, queryErr
	}
	defer t.closeRows(rows)

	count := 0
	if rows.Next() {
		if scanErr := rows.Scan(&count); scanErr != nil {
			t.engine.logError(logMsgScanRowFailed, scanErr)
			return 0, mapStorageError(scanErr)
		}
	}

	return count, nil
}

// MarkBorrowReturned closes an OPEN borrow. The is_returned guard makes a
// second close affect no rows, which surfaces as ErrRecordNotFound.
func (t *storeTx) MarkBorrowReturned(
	ctx context.Context,
	id core.BorrowIDInt64,
	returnDate time.Time,
	receivedBy core.UserIDInt64,
) error {
	sqlQuery, args, buildErr := buildMarkBorrowReturnedQuery(id, returnDate, receivedBy)
	if buildErr != nil {
		t.engine.logError(logMsgBuildQueryFailed, buildErr)
		return buildErr
	}

	rowsAffected, execErr := t.exec(ctx, opMarkBorrowReturned, sqlQuery, args)
	if execErr != nil {
		return execErr
	}

	if rowsAffected == 0 {
		return lendingstore.ErrRecordNotFound
	}

	return nil
}

// BorrowsOf lists all borrows of one user, oldest first.
func (t *storeTx) BorrowsOf(ctx context.Context, userID core.UserIDInt64) ([]core.Borrow, error) {
	sqlQuery, args, buildErr := buildSelectBorrowsOfUserQuery(userID)
	if buildErr != nil {
		t.engine.logError(logMsgBuildQueryFailed, buildErr)
		return nil, buildErr
	}

	return t.collectBorrows(ctx, opSelectBorrowsOfUser, sqlQuery, args)
}

// OpenOverdueBorrows lists OPEN borrows whose due date strictly precedes the
// filter date, joined with the borrower's role for report filtering.
func (t *storeTx) OpenOverdueBorrows(
	ctx context.Context,
	filter lendingstore.OverdueReportFilter,
) ([]lendingstore.OverdueBorrowRow, error) {
	sqlQuery, args, buildErr := buildSelectOpenOverdueBorrowsQuery(filter)
	if buildErr != nil {
		t.engine.logError(logMsgBuildQueryFailed, buildErr)
		return nil, buildErr
	}

	rows, queryErr := t.query(ctx, opSelectOverdue, sqlQuery, args)
	if queryErr != nil {
		return nil, queryErr
	}
	defer t.closeRows(rows)

	report := make([]lendingstore.OverdueBorrowRow, 0)

	for rows.Next() {
		var row lendingstore.OverdueBorrowRow
		var roleRaw string

		borrow, scanErr := scanBorrowWithExtra(rows, &roleRaw)
		if scanErr != nil {
			t.engine.logError(logMsgScanRowFailed, scanErr)
			return nil, mapStorageError(scanErr)
		}

		row.Borrow = borrow
		row.BorrowerRole = core.Role(roleRaw)
		report = append(report, row)
	}

	return report, nil
}

// OpenOverdueBorrowsWithoutFine lists the OPEN overdue borrows that have no
// fine yet, for the on-demand assessment sweep.
func (t *storeTx) OpenOverdueBorrowsWithoutFine(ctx context.Context, asOf time.Time) ([]core.Borrow, error) {
	sqlQuery, args, buildErr := buildSelectOverdueWithoutFineQuery(asOf)
	if buildErr != nil {
		t.engine.logError(logMsgBuildQueryFailed, buildErr)
		return nil, buildErr
	}

	return t.collectBorrows(ctx, opSelectOverdue, sqlQuery, args)
}

// BorrowingTrends lists borrows narrowed by borrower role, calendar time
// window of the borrow date, and book category.
func (t *storeTx) BorrowingTrends(
	ctx context.Context,
	filter lendingstore.BorrowingTrendsFilter,
) ([]core.Borrow, error) {
	sqlQuery, args, buildErr := buildSelectBorrowingTrendsQuery(filter)
	if buildErr != nil {
		t.engine.logError(logMsgBuildQueryFailed, buildErr)
		return nil, buildErr
	}

	return t.collectBorrows(ctx, opSelectTrends, sqlQuery, args)
}

func (t *storeTx) collectBorrows(ctx context.Context, operation string, sqlQuery sqlQueryString, args []any) ([]core.Borrow, error) {
	rows, queryErr := t.query(ctx, operation, sqlQuery, args)
	if queryErr != nil {
		return nil, queryErr
	}
	defer t.closeRows(rows)

	borrows := make([]core.Borrow, 0)

	for rows.Next() {
		borrow, scanErr := scanBorrow(rows)
		if scanErr != nil {
			t.engine.logError(logMsgScanRowFailed, scanErr)
			return nil, mapStorageError(scanErr)
		}

		borrows = append(borrows, borrow)
	}

	return borrows, nil
}

// rowScanner is the subset of the adapter rows needed by the scan helpers.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanBorrow(rows rowScanner) (core.Borrow, error) {
	return scanBorrowWithExtra(rows)
}

func scanBorrowWithExtra(rows rowScanner, extra ...any) (core.Borrow, error) {
	var borrow core.Borrow
	var receivedBy sql.NullInt64
	var returnDate sql.NullTime
	var comments sql.NullString

	dest := []any{
		&borrow.ID,
		&borrow.BookID,
		&borrow.BorrowedBy,
		&borrow.GivenBy,
		&receivedBy,
		&borrow.BorrowDate,
		&borrow.DueDate,
		&returnDate,
		&borrow.IsReturned,
		&comments,
	}
	dest = append(dest, extra...)

	if err := rows.Scan(dest...); err != nil {
		return core.Borrow{}, err
	}

	if receivedBy.Valid {
		borrow.ReceivedBy = &receivedBy.Int64
	}

	if returnDate.Valid {
		borrow.ReturnDate = &returnDate.Time
	}

	borrow.Comments = comments.String

	return borrow, nil
}

func borrowColumns() []any {
	return []any{
		colID,
		colBorrowBookID,
		colBorrowBorrowedBy,
		colBorrowGivenBy,
		colBorrowReceivedBy,
		colBorrowDate,
		colBorrowDueDate,
		colBorrowReturnDate,
		colBorrowIsReturned,
		colBorrowComments,
	}
}

func qualifiedBorrowColumns() []any {
	cols := borrowColumns()
	qualified := make([]any, 0, len(cols))

	for _, col := range cols {
		qualified = append(qualified, goqu.I(tableBorrow+"."+col.(string)))
	}

	return qualified
}

func buildInsertBorrowQuery(borrow core.Borrow) (sqlQueryString, []any, error) {
	insertStmt := builder.
		Insert(tableBorrow).
		Prepared(true).
		Rows(goqu.Record{
			colBorrowBookID:     borrow.BookID,
			colBorrowBorrowedBy: borrow.BorrowedBy,
			colBorrowGivenBy:    borrow.GivenBy,
			colBorrowDate:       borrow.BorrowDate,
			colBorrowDueDate:    borrow.DueDate,
			colBorrowIsReturned: false,
			colBorrowComments:   borrow.Comments,
		}).
		Returning(colID)

	sqlQuery, args, toSQLErr := insertStmt.ToSQL()
	if toSQLErr != nil {
		return "", nil, errors.Join(lendingstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, args, nil
}

func buildSelectBorrowForUpdateQuery(id core.BorrowIDInt64) (sqlQueryString, []any, error) {
	selectStmt := builder.
		From(tableBorrow).
		Prepared(true).
		Select(borrowColumns()...).
		Where(goqu.C(colID).Eq(id)).
		ForUpdate(exp.Wait)

	sqlQuery, args, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		return "", nil, errors.Join(lendingstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, args, nil
}

func buildCountOpenBorrowsQuery(userID core.UserIDInt64) (sqlQueryString, []any, error) {
	selectStmt := builder.
		From(tableBorrow).
		Prepared(true).
		Select(goqu.COUNT(goqu.Star())).
		Where(
			goqu.C(colBorrowBorrowedBy).Eq(userID),
			goqu.C(colBorrowIsReturned).IsFalse(),
		)

	sqlQuery, args, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		return "", nil, errors.Join(lendingstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, args, nil
}

func buildMarkBorrowReturnedQuery(id core.BorrowIDInt64, returnDate time.Time, receivedBy core.UserIDInt64) (sqlQueryString, []any, error) {
	updateStmt := builder.
		Update(tableBorrow).
		Prepared(true).
		Set(goqu.Record{
			colBorrowIsReturned: true,
			colBorrowReturnDate: returnDate,
			colBorrowReceivedBy: receivedBy,
		}).
		Where(
			goqu.C(colID).Eq(id),
			goqu.C(colBorrowIsReturned).IsFalse(),
		)

	sqlQuery, args, toSQLErr := updateStmt.ToSQL()
	if toSQLErr != nil {
		return "", nil, errors.Join(lendingstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, args, nil
}

func buildSelectBorrowsOfUserQuery(userID core.UserIDInt64) (sqlQueryString, []any, error) {
	selectStmt := builder.
		From(tableBorrow).
		Prepared(true).
		Select(borrowColumns()...).
		Where(goqu.C(colBorrowBorrowedBy).Eq(userID)).
		Order(goqu.I(colBorrowDate).Asc())

	sqlQuery, args, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		return "", nil, errors.Join(lendingstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, args, nil
}

func buildSelectOpenOverdueBorrowsQuery(filter lendingstore.OverdueReportFilter) (sqlQueryString, []any, error) {
	cols := qualifiedBorrowColumns()
	cols = append(cols, goqu.I(tableUserAccount+"."+colUserRole))

	selectStmt := builder.
		From(tableBorrow).
		Prepared(true).
		Join(
			goqu.T(tableUserAccount),
			goqu.On(goqu.I(tableBorrow+"."+colBorrowBorrowedBy).Eq(goqu.I(tableUserAccount+"."+colID))),
		).
		Select(cols...).
		Where(
			goqu.I(tableBorrow+"."+colBorrowDueDate).Lt(truncateToDate(filter.AsOf)),
			goqu.I(tableBorrow+"."+colBorrowIsReturned).IsFalse(),
		)

	if filter.Role != "" {
		selectStmt = selectStmt.Where(goqu.I(tableUserAccount + "." + colUserRole).Eq(string(filter.Role)))
	}

	switch filter.DueDateSort {
	case lendingstore.SortAsc:
		selectStmt = selectStmt.Order(goqu.I(tableBorrow + "." + colBorrowDueDate).Asc())
	case lendingstore.SortDesc:
		selectStmt = selectStmt.Order(goqu.I(tableBorrow + "." + colBorrowDueDate).Desc())
	case lendingstore.SortNone:
	}

	sqlQuery, args, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		return "", nil, errors.Join(lendingstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, args, nil
}

func buildSelectOverdueWithoutFineQuery(asOf time.Time) (sqlQueryString, []any, error) {
	selectStmt := builder.
		From(tableBorrow).
		Prepared(true).
		LeftJoin(
			goqu.T(tableFine),
			goqu.On(goqu.I(tableFine+"."+colFineBorrowID).Eq(goqu.I(tableBorrow+"."+colID))),
		).
		Select(qualifiedBorrowColumns()...).
		Where(
			goqu.I(tableFine+"."+colID).IsNull(),
			goqu.I(tableBorrow+"."+colBorrowDueDate).Lt(truncateToDate(asOf)),
			goqu.I(tableBorrow+"."+colBorrowIsReturned).IsFalse(),
		).
		Order(goqu.I(tableBorrow + "." + colBorrowDueDate).Asc())

	sqlQuery, args, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		return "", nil, errors.Join(lendingstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, args, nil
}

func buildSelectBorrowingTrendsQuery(filter lendingstore.BorrowingTrendsFilter) (sqlQueryString, []any, error) {
	selectStmt := builder.
		From(tableBorrow).
		Prepared(true).
		Select(qualifiedBorrowColumns()...).
		Order(goqu.I(tableBorrow + "." + colBorrowDate).Asc())

	if filter.Role != "" {
		selectStmt = selectStmt.
			Join(
				goqu.T(tableUserAccount),
				goqu.On(goqu.I(tableBorrow+"."+colBorrowBorrowedBy).Eq(goqu.I(tableUserAccount+"."+colID))),
			).
			Where(goqu.I(tableUserAccount + "." + colUserRole).Eq(string(filter.Role)))
	}

	if filter.CategoryID != 0 {
		selectStmt = selectStmt.
			Join(
				goqu.T(tableBook),
				goqu.On(goqu.I(tableBorrow+"."+colBorrowBookID).Eq(goqu.I(tableBook+"."+colID))),
			).
			Where(goqu.I(tableBook + "." + colBookCategoryID).Eq(filter.CategoryID))
	}

	if windowExpr, ok := timeWindowExpression(filter.TimeWindow, filter.AsOf); ok {
		selectStmt = selectStmt.Where(windowExpr)
	}

	sqlQuery, args, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		return "", nil, errors.Join(lendingstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, args, nil
}

// timeWindowExpression compares one extracted calendar component of the
// borrow date with the same component of the reference time. The component
// keyword is taken from a fixed whitelist, never from caller input.
func timeWindowExpression(window lendingstore.TimeWindow, asOf time.Time) (exp.Expression, bool) {
	var component string

	switch window {
	case lendingstore.TimeWindowDay:
		component = "DAY"
	case lendingstore.TimeWindowWeek:
		component = "WEEK"
	case lendingstore.TimeWindowMonth:
		component = "MONTH"
	case lendingstore.TimeWindowYear:
		component = "YEAR"
	case lendingstore.TimeWindowNone:
		return nil, false
	default:
		return nil, false
	}

	return goqu.L(
		"EXTRACT("+component+" FROM ?) = EXTRACT("+component+" FROM ?)",
		goqu.I(tableBorrow+"."+colBorrowDate),
		asOf,
	), true
}

// truncateToDate drops the time-of-day portion; overdue checks are date-only.
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
