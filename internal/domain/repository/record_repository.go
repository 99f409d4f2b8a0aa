package repository

import "context"

// RecordRepository exposes the data-capture platform's record storage: flat
// field reads for a record's event, and repeating-instance rows addressed by
// project/record/event/form-field-set/instance-number.
type RecordRepository interface {
	// RecordFields returns the non-repeating field values of a record for
	// the given event, keyed by field name. Fields without a stored value
	// are absent from the map.
	RecordFields(ctx context.Context, projectID, eventID int64, record string) (map[string]string, error)

	// RepeatingInstances returns the stored values of the given fields
	// across all repeating instances of a record, keyed by instance number
	// then field name.
	RepeatingInstances(ctx context.Context, projectID, eventID int64, record string, fields []string) (map[int]map[string]string, error)

	// NextInstance returns one plus the highest instance number currently
	// holding any of the given fields for the record, or 1 when none exist.
	NextInstance(ctx context.Context, projectID, eventID int64, record string, fields []string) (int, error)

	// UpsertInstance writes the given field values into one repeating
	// instance, creating or overwriting each field row.
	UpsertInstance(ctx context.Context, projectID, eventID int64, record string, instance int, values map[string]string) error

	// ListRecords returns the distinct record identifiers present in a
	// project's event, in storage order.
	ListRecords(ctx context.Context, projectID, eventID int64) ([]string, error)
}
