package shell

import (
	"context"

	"github.com/google/uuid"

	"github.com/bookwyrmhq/lending-backend-go/core"
	"github.com/bookwyrmhq/lending-backend-go/lendingstore"
)

// AppendAuditRecord serializes a domain event with fresh tracking metadata
// and appends it to the audit log. Command handlers call this inside the
// same transaction as the state change itself.
func AppendAuditRecord(ctx context.Context, auditLog lendingstore.AuditLog, event core.DomainEvent) error {
	uid := uuid.New()
	metadata := BuildEventMetadata(uid, uid, uid)

	record, err := AuditRecordFrom(event, metadata)
	if err != nil {
		return err
	}

	return auditLog.AppendAuditRecord(ctx, record)
}
