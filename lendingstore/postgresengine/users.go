package postgresengine

import (
	"context"
	"errors"

	"github.com/doug-martin/goqu/v9"

	"github.com/bookwyrmhq/lending-backend-go/core"
	"github.com/bookwyrmhq/lending-backend-go/lendingstore"
)

const (
	colUserEmail     = "email"
	colUserFirstName = "first_name"
	colUserLastName  = "last_name"
	colUserPassword  = "password_hash"
	colUserIsActive  = "is_active"
	colUserRole      = "role"

	opInsertUser        = "insert user account"
	opCheckEmailExists  = "check email exists"
	opSetUserRoleByMail = "set user role by email"
)

// InsertUser stores a new account and returns its generated id. A duplicate
// email surfaces as lendingstore.ErrUniqueViolation.
func (t *storeTx) InsertUser(ctx context.Context, user core.UserAccount) (core.UserIDInt64, error) {
	sqlQuery, args, buildErr := buildInsertUserQuery(user)
	if buildErr != nil {
		t.engine.logError(logMsgBuildQueryFailed, buildErr)
		return 0, buildErr
	}

	return t.queryRowID(ctx, opInsertUser, sqlQuery, args)
}

// EmailExists reports whether an account with the given email is registered.
func (t *storeTx) EmailExists(ctx context.Context, email string) (bool, error) {
	sqlQuery, args, buildErr := buildEmailExistsQuery(email)
	if buildErr != nil {
		t.engine.logError(logMsgBuildQueryFailed, buildErr)
		return false, buildErr
	}

	rows, queryErr := t.query(ctx, opCheckEmailExists, sqlQuery, args)
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

// SetUserRoleByEmail changes the role of the account registered under email.
// No affected row means no such account exists.
func (t *storeTx) SetUserRoleByEmail(ctx context.Context, email string, role core.Role) error {
	sqlQuery, args, buildErr := buildSetUserRoleByEmailQuery(email, role)
	if buildErr != nil {
		t.engine.logError(logMsgBuildQueryFailed, buildErr)
		return buildErr
	}

	rowsAffected, execErr := t.exec(ctx, opSetUserRoleByMail, sqlQuery, args)
	if execErr != nil {
		return execErr
	}

	if rowsAffected == 0 {
		return lendingstore.ErrRecordNotFound
	}

	return nil
}

func buildInsertUserQuery(user core.UserAccount) (sqlQueryString, []any, error) {
	insertStmt := builder.
		Insert(tableUserAccount).
		Prepared(true).
		Rows(goqu.Record{
			colUserEmail:     user.Email,
			colUserFirstName: user.FirstName,
			colUserLastName:  user.LastName,
			colUserPassword:  user.PasswordHash,
			colUserIsActive:  user.IsActive,
			colUserRole:      string(user.Role),
		}).
		Returning(colID)

	sqlQuery, args, toSQLErr := insertStmt.ToSQL()
	if toSQLErr != nil {
		return "", nil, errors.Join(lendingstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, args, nil
}

func buildEmailExistsQuery(email string) (sqlQueryString, []any, error) {
	existsStmt := builder.
		From(tableUserAccount).
		Prepared(true).
		Select(goqu.L("TRUE")).
		Where(goqu.C(colUserEmail).Eq(email)).
		Limit(1)

	sqlQuery, args, toSQLErr := existsStmt.ToSQL()
	if toSQLErr != nil {
		return "", nil, errors.Join(lendingstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, args, nil
}

func buildSetUserRoleByEmailQuery(email string, role core.Role) (sqlQueryString, []any, error) {
	updateStmt := builder.
		Update(tableUserAccount).
		Prepared(true).
		Set(goqu.Record{colUserRole: string(role)}).
		Where(goqu.C(colUserEmail).Eq(email))

	sqlQuery, args, toSQLErr := updateStmt.ToSQL()
	if toSQLErr != nil {
		return "", nil, errors.Join(lendingstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, args, nil
}
