package postgresengine

import (
	"context"
	"errors"

	"github.com/doug-martin/goqu/v9"

	"github.com/bookwyrmhq/lending-backend-go/core"
	"github.com/bookwyrmhq/lending-backend-go/lendingstore"
)

const (
	colCategoryName    = "name"
	colCategoryAddedBy = "added_by_id"

	opInsertCategory = "insert category"
	opListCategories = "list categories"
)

// InsertCategory stores a new book category and returns its generated id.
// A duplicate name surfaces as lendingstore.ErrUniqueViolation.
func (t *storeTx) InsertCategory(ctx context.Context, category core.Category) (int64, error) {
	sqlQuery, args, buildErr := buildInsertCategoryQuery(category)
	if buildErr != nil {
		t.engine.logError(logMsgBuildQueryFailed, buildErr)
		return 0, buildErr
	}

	return t.queryRowID(ctx, opInsertCategory, sqlQuery, args)
}

// ListCategories lists all book categories, ordered by name.
func (t *storeTx) ListCategories(ctx context.Context) ([]core.Category, error) {
	sqlQuery, args, buildErr := buildListCategoriesQuery()
	if buildErr != nil {
		t.engine.logError(logMsgBuildQueryFailed, buildErr)
		return nil, buildErr
	}

	rows, queryErr := t.query(ctx, opListCategories, sqlQuery, args)
	if queryErr != nil {
		return nil, queryErr
	}
	defer t.closeRows(rows)

	categories := make([]core.Category, 0)

	for rows.Next() {
		var category core.Category

		if scanErr := rows.Scan(&category.ID, &category.Name, &category.AddedBy); scanErr != nil {
			t.engine.logError(logMsgScanRowFailed, scanErr)
			return nil, mapStorageError(scanErr)
		}

		categories = append(categories, category)
	}

	return categories, nil
}

func buildInsertCategoryQuery(category core.Category) (sqlQueryString, []any, error) {
	insertStmt := builder.
		Insert(tableCategory).
		Prepared(true).
		Rows(goqu.Record{
			colCategoryName:    category.Name,
			colCategoryAddedBy: category.AddedBy,
		}).
		Returning(colID)

	sqlQuery, args, toSQLErr := insertStmt.ToSQL()
	if toSQLErr != nil {
		return "", nil, errors.Join(lendingstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, args, nil
}

func buildListCategoriesQuery() (sqlQueryString, []any, error) {
	selectStmt := builder.
		From(tableCategory).
		Prepared(true).
		Select(colID, colCategoryName, colCategoryAddedBy).
		Order(goqu.I(colCategoryName).Asc())

	sqlQuery, args, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		return "", nil, errors.Join(lendingstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, args, nil
}
