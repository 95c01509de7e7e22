package postgresengine

import (
	"context"
	"errors"

	"github.com/doug-martin/goqu/v9"

	"github.com/bookwyrmhq/lending-backend-go/lendingstore"
)

const (
	colAuditEventType  = "event_type"
	colAuditOccurredAt = "occurred_at"
	colAuditPayload    = "payload"
	colAuditMetadata   = "metadata"

	opAppendAuditRecord = "append audit record"
)

// AppendAuditRecord writes one audit trail entry. The audit log is
// append-only; entries are never updated or deleted by this store.
func (t *storeTx) AppendAuditRecord(ctx context.Context, record lendingstore.AuditRecord) error {
	sqlQuery, args, buildErr := buildAppendAuditRecordQuery(record)
	if buildErr != nil {
		t.engine.logError(logMsgBuildQueryFailed, buildErr)
		return buildErr
	}

	if _, execErr := t.exec(ctx, opAppendAuditRecord, sqlQuery, args); execErr != nil {
		return execErr
	}

	return nil
}

func buildAppendAuditRecordQuery(record lendingstore.AuditRecord) (sqlQueryString, []any, error) {
	insertStmt := builder.
		Insert(tableAuditLog).
		Prepared(true).
		Rows(goqu.Record{
			colAuditEventType:  record.EventType,
			colAuditOccurredAt: record.OccurredAt,
			colAuditPayload:    record.PayloadJSON,
			colAuditMetadata:   record.MetadataJSON,
		})

	sqlQuery, args, toSQLErr := insertStmt.ToSQL()
	if toSQLErr != nil {
		return "", nil, errors.Join(lendingstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, args, nil
}
