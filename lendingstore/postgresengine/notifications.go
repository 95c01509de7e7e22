package postgresengine

import (
	"context"
	"errors"

	"github.com/doug-martin/goqu/v9"

	"github.com/bookwyrmhq/lending-backend-go/core"
	"github.com/bookwyrmhq/lending-backend-go/lendingstore"
)

const (
	colNotificationUserID    = "user_id"
	colNotificationMessage   = "message"
	colNotificationIsRead    = "is_read"
	colNotificationSentDate  = "sent_date"

	opInsertNotification  = "insert notification"
	opMarkNotificationRead = "mark notification read"
	opSelectUnreadOfUser  = "select unread notifications of user"
)

// InsertNotification stores a new notification for a user.
func (t *storeTx) InsertNotification(ctx context.Context, notification core.Notification) error {
	sqlQuery, args, buildErr := buildInsertNotificationQuery(notification)
	if buildErr != nil {
		t.engine.logError(logMsgBuildQueryFailed, buildErr)
		return buildErr
	}

	if _, execErr := t.exec(ctx, opInsertNotification, sqlQuery, args); execErr != nil {
		return execErr
	}

	return nil
}

// MarkNotificationRead flags an unread notification as read. The is_read
// guard makes a missing row and an already-read notification
// indistinguishable on purpose: both surface as ErrRecordNotFound. The user
// filter keeps one user from acknowledging another user's notifications.
func (t *storeTx) MarkNotificationRead(ctx context.Context, id int64, userID core.UserIDInt64) error {
	sqlQuery, args, buildErr := buildMarkNotificationReadQuery(id, userID)
	if buildErr != nil {
		t.engine.logError(logMsgBuildQueryFailed, buildErr)
		return buildErr
	}

	rowsAffected, execErr := t.exec(ctx, opMarkNotificationRead, sqlQuery, args)
	if execErr != nil {
		return execErr
	}

	if rowsAffected == 0 {
		return lendingstore.ErrRecordNotFound
	}

	return nil
}

// UnreadNotificationsOf lists the unread notifications of one user, oldest first.
func (t *storeTx) UnreadNotificationsOf(ctx context.Context, userID core.UserIDInt64) ([]core.Notification, error) {
	sqlQuery, args, buildErr := buildSelectUnreadNotificationsQuery(userID)
	if buildErr != nil {
		t.engine.logError(logMsgBuildQueryFailed, buildErr)
		return nil, buildErr
	}

	rows, queryErr := t.query(ctx, opSelectUnreadOfUser, sqlQuery, args)
	if queryErr != nil {
		return nil, queryErr
	}
	defer t.closeRows(rows)

	notifications := make([]core.Notification, 0)

	for rows.Next() {
		var notification core.Notification

		scanErr := rows.Scan(
			&notification.ID,
			&notification.UserID,
			&notification.Message,
			&notification.IsRead,
			&notification.SentDate,
		)
		if scanErr != nil {
			t.engine.logError(logMsgScanRowFailed, scanErr)
			return nil, mapStorageError(scanErr)
		}

		notifications = append(notifications, notification)
	}

	return notifications, nil
}

func buildInsertNotificationQuery(notification core.Notification) (sqlQueryString, []any, error) {
	insertStmt := builder.
		Insert(tableNotification).
		Prepared(true).
		Rows(goqu.Record{
			colNotificationUserID:   notification.UserID,
			colNotificationMessage:  notification.Message,
			colNotificationIsRead:   false,
			colNotificationSentDate: notification.SentDate,
		})

	sqlQuery, args, toSQLErr := insertStmt.ToSQL()
	if toSQLErr != nil {
		return "", nil, errors.Join(lendingstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, args, nil
}

func buildMarkNotificationReadQuery(id int64, userID core.UserIDInt64) (sqlQueryString, []any, error) {
	updateStmt := builder.
		Update(tableNotification).
		Prepared(true).
		Set(goqu.Record{colNotificationIsRead: true}).
		Where(
			goqu.C(colID).Eq(id),
			goqu.C(colNotificationUserID).Eq(userID),
			goqu.C(colNotificationIsRead).IsFalse(),
		)

	sqlQuery, args, toSQLErr := updateStmt.ToSQL()
	if toSQLErr != nil {
		return "", nil, errors.Join(lendingstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, args, nil
}

func buildSelectUnreadNotificationsQuery(userID core.UserIDInt64) (sqlQueryString, []any, error) {
	selectStmt := builder.
		From(tableNotification).
		Prepared(true).
		Select(
			colID,
			colNotificationUserID,
			colNotificationMessage,
			colNotificationIsRead,
			colNotificationSentDate,
		).
		Where(
			goqu.C(colNotificationUserID).Eq(userID),
			goqu.C(colNotificationIsRead).IsFalse(),
		).
		Order(goqu.C(colNotificationSentDate).Asc())

	sqlQuery, args, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		return "", nil, errors.Join(lendingstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, args, nil
}
