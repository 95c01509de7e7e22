package lendingstore

import (
	"encoding/json"
	"errors"
	"time"
)

var ErrInvalidPayloadJSON = errors.New("payload json is not valid")
var ErrInvalidMetadataJSON = errors.New("metadata json is not valid")

// AuditRecords is an alias type for a slice of AuditRecord.
type AuditRecords = []AuditRecord

// AuditRecord is a DTO used by the store to append audit-trail entries and
// query them back.
//
// It is built on scalars to be completely agnostic of the implementation of
// Domain Events in the client code. While its properties are exported, it
// should only be constructed with the supplied factory methods:
//   - BuildAuditRecord
//   - BuildAuditRecordWithEmptyMetadata
type AuditRecord struct {
	EventType    string
	OccurredAt   time.Time
	PayloadJSON  []byte
	MetadataJSON []byte
}

// BuildAuditRecord is a factory method for AuditRecord.
// Returns an error if payloadJSON or metadataJSON are not valid JSON.
func BuildAuditRecord(eventType string, occurredAt time.Time, payloadJSON []byte, metadataJSON []byte) (AuditRecord, error) {
	if !json.Valid(payloadJSON) {
		return AuditRecord{}, ErrInvalidPayloadJSON
	}

	if !json.Valid(metadataJSON) {
		return AuditRecord{}, ErrInvalidMetadataJSON
	}

	return AuditRecord{
		EventType:    eventType,
		OccurredAt:   occurredAt,
		PayloadJSON:  payloadJSON,
		MetadataJSON: metadataJSON,
	}, nil
}

// BuildAuditRecordWithEmptyMetadata is a factory method for AuditRecord that
// creates valid empty JSON for MetadataJSON.
func BuildAuditRecordWithEmptyMetadata(eventType string, occurredAt time.Time, payloadJSON []byte) (AuditRecord, error) {
	return BuildAuditRecord(eventType, occurredAt, payloadJSON, []byte("{}"))
}
