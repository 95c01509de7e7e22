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
	colFineBorrowID      = "borrow_id"
	colFineAmount        = "amount"
	colFinePaid          = "paid"
	colFineDateCreated   = "date_created"
	colFineDatePaid      = "date_paid"
	colFinePaymentMethod = "payment_method"
	colFineTransactionID = "transaction_id"
	colFineCollectedBy   = "collected_by_id"

	opInsertFine          = "insert fine"
	opGetUnpaidFine       = "select unpaid fine for update"
	opFineExistsForBorrow = "check fine exists for borrow"
	opMarkFinePaid        = "mark fine paid"
	opSelectFinesOfUser   = "select fines of user"
	opSelectFineTotals    = "select fine totals of user"
	opSelectCollected     = "select collected fines"
)

// InsertFine records a newly assessed fine and returns its generated id.
// The unique constraint on borrow_id makes a second fine for the same borrow
// surface as lendingstore.ErrUniqueViolation.
func (t *storeTx) InsertFine(ctx context.Context, fine core.Fine) (core.FineIDInt64, error) {
	sqlQuery, args, buildErr := buildInsertFineQuery(fine)
	if buildErr != nil {
		t.engine.logError(logMsgBuildQueryFailed, buildErr)
		return 0, buildErr
	}

	return t.queryRowID(ctx, opInsertFine, sqlQuery, args)
}

// GetUnpaidFineForUpdate loads an unpaid fine joined with its borrower and
// locks it. A missing row and an already-paid fine are indistinguishable
// here on purpose: both come back as ErrRecordNotFound.
func (t *storeTx) GetUnpaidFineForUpdate(ctx context.Context, id core.FineIDInt64) (lendingstore.FineWithBorrower, error) {
	var empty lendingstore.FineWithBorrower

	sqlQuery, args, buildErr := buildSelectUnpaidFineForUpdateQuery(id)
	if buildErr != nil {
		t.engine.logError(logMsgBuildQueryFailed, buildErr)
		return empty, buildErr
	}

	rows, queryErr := t.query(ctx, opGetUnpaidFine, sqlQuery, args)
	if queryErr != nil {
		return empty, queryErr
	}
	defer t.closeRows(rows)

	if !rows.Next() {
		return empty, lendingstore.ErrRecordNotFound
	}

	var result lendingstore.FineWithBorrower

	fine, scanErr := scanFineWithExtra(rows, &result.BorrowedBy)
	if scanErr != nil {
		t.engine.logError(logMsgScanRowFailed, scanErr)
		return empty, mapStorageError(scanErr)
	}

	result.Fine = fine

	return result, nil
}

// FineExistsForBorrow reports whether a fine has already been assessed for the borrow.
func (t *storeTx) FineExistsForBorrow(ctx context.Context, borrowID core.BorrowIDInt64) (bool, error) {
	sqlQuery, args, buildErr := buildFineExistsForBorrowQuery(borrowID)
	if buildErr != nil {
		t.engine.logError(logMsgBuildQueryFailed, buildErr)
		return false, buildErr
	}

	rows, queryErr := t.query(ctx, opFineExistsForBorrow, sqlQuery, args)
	if queryErr != nil {
		return false, queryErr
	}
	defer t.closeRows(rows)

	exists := false
	if rows.Next() {
		if scanErr := rows.Scan(&exists); scanErr != nil {
			t.engine.logError(logMsgScanRowFailed, scanErr)
			return false, mapStorageError(scanErr)
		}
	}

	return exists, nil
}

// MarkFinePaid settles an unpaid fine. The paid guard makes a double payment
// affect no rows, surfacing as ErrRecordNotFound.
func (t *storeTx) MarkFinePaid(
	ctx context.Context,
	id core.FineIDInt64,
	paidAt time.Time,
	method core.PaymentMethod,
	transactionID *string,
	collectedBy *core.UserIDInt64,
) error {
	sqlQuery, args, buildErr := buildMarkFinePaidQuery(id, paidAt, method, transactionID, collectedBy)
	if buildErr != nil {
		t.engine.logError(logMsgBuildQueryFailed, buildErr)
		return buildErr
	}

	rowsAffected, execErr := t.exec(ctx, opMarkFinePaid, sqlQuery, args)
	if execErr != nil {
		return execErr
	}

	if rowsAffected == 0 {
		return lendingstore.ErrRecordNotFound
	}

	return nil
}

// FinesOf lists all fines on borrows of one user.
func (t *storeTx) FinesOf(ctx context.Context, userID core.UserIDInt64) ([]core.Fine, error) {
	sqlQuery, args, buildErr := buildSelectFinesOfUserQuery(userID)
	if buildErr != nil {
		t.engine.logError(logMsgBuildQueryFailed, buildErr)
		return nil, buildErr
	}

	rows, queryErr := t.query(ctx, opSelectFinesOfUser, sqlQuery, args)
	if queryErr != nil {
		return nil, queryErr
	}
	defer t.closeRows(rows)

	fines := make([]core.Fine, 0)

	for rows.Next() {
		fine, scanErr := scanFineWithExtra(rows)
		if scanErr != nil {
			t.engine.logError(logMsgScanRowFailed, scanErr)
			return nil, mapStorageError(scanErr)
		}

		fines = append(fines, fine)
	}

	return fines, nil
}

// FineTotalsOf sums the paid and unpaid fine amounts of one user.
func (t *storeTx) FineTotalsOf(ctx context.Context, userID core.UserIDInt64) (lendingstore.FineTotals, error) {
	var totals lendingstore.FineTotals

	sqlQuery, args, buildErr := buildSelectFineTotalsQuery(userID)
	if buildErr != nil {
		t.engine.logError(logMsgBuildQueryFailed, buildErr)
		return totals, buildErr
	}

	rows, queryErr := t.query(ctx, opSelectFineTotals, sqlQuery, args)
	if queryErr != nil {
		return totals, queryErr
	}
	defer t.closeRows(rows)

	if rows.Next() {
		if scanErr := rows.Scan(&totals.Paid, &totals.Unpaid); scanErr != nil {
			t.engine.logError(logMsgScanRowFailed, scanErr)
			return lendingstore.FineTotals{}, mapStorageError(scanErr)
		}
	}

	return totals, nil
}

// CollectedFines lists paid fines joined with borrower information for the
// admin report.
func (t *storeTx) CollectedFines(
	ctx context.Context,
	filter lendingstore.CollectedFinesFilter,
) ([]lendingstore.CollectedFineRow, error) {
	sqlQuery, args, buildErr := buildSelectCollectedFinesQuery(filter)
	if buildErr != nil {
		t.engine.logError(logMsgBuildQueryFailed, buildErr)
		return nil, buildErr
	}

	rows, queryErr := t.query(ctx, opSelectCollected, sqlQuery, args)
	if queryErr != nil {
		return nil, queryErr
	}
	defer t.closeRows(rows)

	report := make([]lendingstore.CollectedFineRow, 0)

	for rows.Next() {
		var row lendingstore.CollectedFineRow
		var roleRaw string

		fine, scanErr := scanFineWithExtra(rows, &row.BorrowedBy, &roleRaw)
		if scanErr != nil {
			t.engine.logError(logMsgScanRowFailed, scanErr)
			return nil, mapStorageError(scanErr)
		}

		row.Fine = fine
		row.BorrowerRole = core.Role(roleRaw)
		report = append(report, row)
	}

	return report, nil
}

func scanFineWithExtra(rows rowScanner, extra ...any) (core.Fine, error) {
	var fine core.Fine
	var datePaid sql.NullTime
	var paymentMethod sql.NullString
	var transactionID sql.NullString
	var collectedBy sql.NullInt64

	dest := []any{
		&fine.ID,
		&fine.BorrowID,
		&fine.Amount,
		&fine.Paid,
		&fine.DateCreated,
		&datePaid,
		&paymentMethod,
		&transactionID,
		&collectedBy,
	}
	dest = append(dest, extra...)

	if err := rows.Scan(dest...); err != nil {
		return core.Fine{}, err
	}

	if datePaid.Valid {
		fine.DatePaid = &datePaid.Time
	}

	if paymentMethod.Valid {
		method := core.PaymentMethod(paymentMethod.String)
		fine.PaymentMethod = &method
	}

	if transactionID.Valid {
		fine.TransactionID = &transactionID.String
	}

	if collectedBy.Valid {
		fine.CollectedBy = &collectedBy.Int64
	}

	return fine, nil
}

func fineColumns() []any {
	return []any{
		colID,
		colFineBorrowID,
		colFineAmount,
		colFinePaid,
		colFineDateCreated,
		colFineDatePaid,
		colFinePaymentMethod,
		colFineTransactionID,
		colFineCollectedBy,
	}
}

func qualifiedFineColumns() []any {
	cols := fineColumns()
	qualified := make([]any, 0, len(cols))

	for _, col := range cols {
		qualified = append(qualified, goqu.I(tableFine+"."+col.(string)))
	}

	return qualified
}

func buildInsertFineQuery(fine core.Fine) (sqlQueryString, []any, error) {
	insertStmt := builder.
		Insert(tableFine).
		Prepared(true).
		Rows(goqu.Record{
			colFineBorrowID:    fine.BorrowID,
			colFineAmount:      fine.Amount,
			colFinePaid:        false,
			colFineDateCreated: fine.DateCreated,
		}).
		Returning(colID)

	sqlQuery, args, toSQLErr := insertStmt.ToSQL()
	if toSQLErr != nil {
		return "", nil, errors.Join(lendingstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, args, nil
}

func buildSelectUnpaidFineForUpdateQuery(id core.FineIDInt64) (sqlQueryString, []any, error) {
	cols := qualifiedFineColumns()
	cols = append(cols, goqu.I(tableBorrow+"."+colBorrowBorrowedBy))

	selectStmt := builder.
		From(tableFine).
		Prepared(true).
		Join(
			goqu.T(tableBorrow),
			goqu.On(goqu.I(tableFine+"."+colFineBorrowID).Eq(goqu.I(tableBorrow+"."+colID))),
		).
		Select(cols...).
		Where(
			goqu.I(tableFine+"."+colID).Eq(id),
			goqu.I(tableFine+"."+colFinePaid).IsFalse(),
		).
		ForUpdate(exp.Wait)

	sqlQuery, args, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		return "", nil, errors.Join(lendingstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, args, nil
}

func buildFineExistsForBorrowQuery(borrowID core.BorrowIDInt64) (sqlQueryString, []any, error) {
	existsStmt := builder.
		From(tableFine).
		Prepared(true).
		Select(goqu.L("TRUE")).
		Where(goqu.C(colFineBorrowID).Eq(borrowID)).
		Limit(1)

	sqlQuery, args, toSQLErr := existsStmt.ToSQL()
	if toSQLErr != nil {
		return "", nil, errors.Join(lendingstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, args, nil
}

func buildMarkFinePaidQuery(
	id core.FineIDInt64,
	paidAt time.Time,
	method core.PaymentMethod,
	transactionID *string,
	collectedBy *core.UserIDInt64,
) (sqlQueryString, []any, error) {
	record := goqu.Record{
		colFinePaid:          true,
		colFineDatePaid:      paidAt,
		colFinePaymentMethod: string(method),
		colFineTransactionID: transactionID,
		colFineCollectedBy:   collectedBy,
	}

	updateStmt := builder.
		Update(tableFine).
		Prepared(true).
		Set(record).
		Where(
			goqu.C(colID).Eq(id),
			goqu.C(colFinePaid).IsFalse(),
		)

	sqlQuery, args, toSQLErr := updateStmt.ToSQL()
	if toSQLErr != nil {
		return "", nil, errors.Join(lendingstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, args, nil
}

func buildSelectFinesOfUserQuery(userID core.UserIDInt64) (sqlQueryString, []any, error) {
	selectStmt := builder.
		From(tableFine).
		Prepared(true).
		Join(
			goqu.T(tableBorrow),
			goqu.On(goqu.I(tableFine+"."+colFineBorrowID).Eq(goqu.I(tableBorrow+"."+colID))),
		).
		Select(qualifiedFineColumns()...).
		Where(goqu.I(tableBorrow + "." + colBorrowBorrowedBy).Eq(userID)).
		Order(goqu.I(tableFine + "." + colFineDateCreated).Asc())

	sqlQuery, args, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		return "", nil, errors.Join(lendingstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, args, nil
}

func buildSelectFineTotalsQuery(userID core.UserIDInt64) (sqlQueryString, []any, error) {
	selectStmt := builder.
		From(tableFine).
		Prepared(true).
		Join(
			goqu.T(tableBorrow),
			goqu.On(goqu.I(tableFine+"."+colFineBorrowID).Eq(goqu.I(tableBorrow+"."+colID))),
		).
		Select(
			goqu.L("COALESCE(SUM(CASE WHEN fine.paid THEN fine.amount ELSE 0 END), 0)"),
			goqu.L("COALESCE(SUM(CASE WHEN NOT fine.paid THEN fine.amount ELSE 0 END), 0)"),
		).
		Where(goqu.I(tableBorrow + "." + colBorrowBorrowedBy).Eq(userID))

	sqlQuery, args, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		return "", nil, errors.Join(lendingstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, args, nil
}

func buildSelectCollectedFinesQuery(filter lendingstore.CollectedFinesFilter) (sqlQueryString, []any, error) {
	cols := qualifiedFineColumns()
	cols = append(cols,
		goqu.I(tableBorrow+"."+colBorrowBorrowedBy),
		goqu.I(tableUserAccount+"."+colUserRole),
	)

	selectStmt := builder.
		From(tableFine).
		Prepared(true).
		Join(
			goqu.T(tableBorrow),
			goqu.On(goqu.I(tableFine+"."+colFineBorrowID).Eq(goqu.I(tableBorrow+"."+colID))),
		).
		Join(
			goqu.T(tableUserAccount),
			goqu.On(goqu.I(tableBorrow+"."+colBorrowBorrowedBy).Eq(goqu.I(tableUserAccount+"."+colID))),
		).
		Select(cols...).
		Where(goqu.I(tableFine + "." + colFinePaid).IsTrue())

	if filter.Role != "" {
		selectStmt = selectStmt.Where(goqu.I(tableUserAccount + "." + colUserRole).Eq(string(filter.Role)))
	}

	switch filter.DatePaidSort {
	case lendingstore.SortAsc:
		selectStmt = selectStmt.Order(goqu.I(tableFine + "." + colFineDatePaid).Asc())
	case lendingstore.SortDesc:
		selectStmt = selectStmt.Order(goqu.I(tableFine + "." + colFineDatePaid).Desc())
	case lendingstore.SortNone:
	}

	switch filter.DateCreatedSort {
	case lendingstore.SortAsc:
		selectStmt = selectStmt.OrderAppend(goqu.I(tableFine + "." + colFineDateCreated).Asc())
	case lendingstore.SortDesc:
		selectStmt = selectStmt.OrderAppend(goqu.I(tableFine + "." + colFineDateCreated).Desc())
	case lendingstore.SortNone:
	}

	sqlQuery, args, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		return "", nil, errors.Join(lendingstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, args, nil
}
