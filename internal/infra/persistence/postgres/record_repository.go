package postgres

import (
	"context"

	"enrollsync/internal/domain/repository"
	"enrollsync/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// recordRepository implements repository.RecordRepository over the
// data-capture platform's EAV table.
type recordRepository struct {
	db *gorm.DB
}

// NewRecordRepository is the constructor for recordRepository.
func NewRecordRepository(db *gorm.DB) repository.RecordRepository {
	return &recordRepository{
		db: db,
	}
}

// RecordFields returns the record's non-repeating field values for an event.
func (repo *recordRepository) RecordFields(ctx context.Context, projectID, eventID int64, record string) (map[string]string, error) {
	var rows []model.CaptureDataModel

	if err := repo.db.WithContext(ctx).
		Where("project_id = ? AND event_id = ? AND record = ? AND instance = 0", projectID, eventID, record).
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load record fields")
	}

	fields := make(map[string]string, len(rows))
	for _, row := range rows {
		fields[row.FieldName] = row.Value
	}

	return fields, nil
}

// RepeatingInstances returns the stored values of the given fields keyed by
// instance number then field name.
func (repo *recordRepository) RepeatingInstances(ctx context.Context, projectID, eventID int64, record string, fields []string) (map[int]map[string]string, error) {
	if len(fields) == 0 {
		return map[int]map[string]string{}, nil
	}

	var rows []model.CaptureDataModel

	if err := repo.db.WithContext(ctx).
		Where("project_id = ? AND event_id = ? AND record = ? AND instance > 0 AND field_name IN ?",
			projectID, eventID, record, fields).
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load repeating instances")
	}

	instances := make(map[int]map[string]string)
	for _, row := range rows {
		values, ok := instances[row.Instance]
		if !ok {
			values = make(map[string]string)
			instances[row.Instance] = values
		}
		values[row.FieldName] = row.Value
	}

	return instances, nil
}

// NextInstance returns one plus the highest instance holding any of the
// given fields, or 1 when the record has none yet.
func (repo *recordRepository) NextInstance(ctx context.Context, projectID, eventID int64, record string, fields []string) (int, error) {
	if len(fields) == 0 {
		return 1, nil
	}

	var maxInstance int

	if err := repo.db.WithContext(ctx).
		Model(&model.CaptureDataModel{}).
		Select("COALESCE(MAX(instance), 0)").
		Where("project_id = ? AND event_id = ? AND record = ? AND field_name IN ?",
			projectID, eventID, record, fields).
		Scan(&maxInstance).Error; err != nil {
		return 0, errors.Wrap(err, "failed to compute next instance")
	}

	return maxInstance + 1, nil
}

// UpsertInstance writes the field values of one repeating instance,
// overwriting rows that already exist.
func (repo *recordRepository) UpsertInstance(ctx context.Context, projectID, eventID int64, record string, instance int, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}

	rows := make([]model.CaptureDataModel, 0, len(values))
	for field, value := range values {
		rows = append(rows, model.CaptureDataModel{
			ProjectID: projectID,
			EventID:   eventID,
			Record:    record,
			FieldName: field,
			Instance:  instance,
			Value:     value,
		})
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "project_id"}, {Name: "event_id"}, {Name: "record"},
				{Name: "field_name"}, {Name: "instance"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&rows).Error; err != nil {
		return errors.Wrapf(err, "failed to upsert instance %d", instance)
	}

	return nil
}

// ListRecords returns the distinct record identifiers of a project's event.
func (repo *recordRepository) ListRecords(ctx context.Context, projectID, eventID int64) ([]string, error) {
	var records []string

	if err := repo.db.WithContext(ctx).
		Model(&model.CaptureDataModel{}).
		Distinct("record").
		Where("project_id = ? AND event_id = ?", projectID, eventID).
		Order("record").
		Pluck("record", &records).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list records")
	}

	return records, nil
}
