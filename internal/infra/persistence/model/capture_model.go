// Package model contains the GORM persistence models, kept separate from
// the domain entities they back.
package model

// CaptureDataModel is one field value of a record in the data-capture
// platform's entity-attribute-value layout. Instance 0 marks a
// non-repeating row; repeating rows start at 1.
type CaptureDataModel struct {
	ProjectID int64  `gorm:"column:project_id;primaryKey"`
	EventID   int64  `gorm:"column:event_id;primaryKey"`
	Record    string `gorm:"column:record;primaryKey"`
	FieldName string `gorm:"column:field_name;primaryKey"`
	Instance  int    `gorm:"column:instance;primaryKey"`
	Value     string `gorm:"column:value"`
}

// TableName overrides the default table name.
func (CaptureDataModel) TableName() string {
	return "capture_data"
}

// SyncKVModel is one scalar of integration state, keyed by name. The OAuth2
// token triple lives here.
type SyncKVModel struct {
	Key   string `gorm:"column:key;primaryKey"`
	Value string `gorm:"column:value"`
}

// TableName overrides the default table name.
func (SyncKVModel) TableName() string {
	return "sync_kv"
}
