package shell

import (
	"errors"

	jsoniter "github.com/json-iterator/go"

	"github.com/bookwyrmhq/lending-backend-go/core"
	"github.com/bookwyrmhq/lending-backend-go/lendingstore"
)

// ErrMappingToAuditRecordFailedForDomainEvent is returned when domain event serialization fails.
var ErrMappingToAuditRecordFailedForDomainEvent = errors.New("mapping to audit record failed for domain event")

// ErrMappingToAuditRecordFailedForMetadata is returned when metadata serialization fails.
var ErrMappingToAuditRecordFailedForMetadata = errors.New("mapping to audit record failed for metadata")

// AuditRecordFrom converts a DomainEvent and EventMetadata to an AuditRecord.
func AuditRecordFrom(event core.DomainEvent, metadata EventMetadata) (lendingstore.AuditRecord, error) {
	payloadJSON, err := jsoniter.ConfigFastest.Marshal(event)
	if err != nil {
		return lendingstore.AuditRecord{}, errors.Join(ErrMappingToAuditRecordFailedForDomainEvent, err)
	}

	metadataJSON, err := jsoniter.ConfigFastest.Marshal(metadata)
	if err != nil {
		return lendingstore.AuditRecord{}, errors.Join(ErrMappingToAuditRecordFailedForMetadata, err)
	}

	auditRecord, err := lendingstore.BuildAuditRecord(
		event.IsEventType(),
		event.HasOccurredAt(),
		payloadJSON,
		metadataJSON,
	)

	if err != nil {
		return lendingstore.AuditRecord{}, errors.Join(ErrMappingToAuditRecordFailedForDomainEvent, err)
	}

	return auditRecord, nil
}

// AuditRecordWithEmptyMetadataFrom converts a DomainEvent to an AuditRecord with empty metadata.
func AuditRecordWithEmptyMetadataFrom(event core.DomainEvent) (lendingstore.AuditRecord, error) {
	payloadJSON, err := jsoniter.ConfigFastest.Marshal(event)
	if err != nil {
		return lendingstore.AuditRecord{}, errors.Join(ErrMappingToAuditRecordFailedForDomainEvent, err)
	}

	auditRecord, err := lendingstore.BuildAuditRecordWithEmptyMetadata(
		event.IsEventType(),
		event.HasOccurredAt(),
		payloadJSON,
	)

	if err != nil {
		return lendingstore.AuditRecord{}, errors.Join(ErrMappingToAuditRecordFailedForDomainEvent, err)
	}

	return auditRecord, nil
}
