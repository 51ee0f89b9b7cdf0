package models

// SchemaVersion is the single-row schema version counter, advanced only by
// the migration runner and only inside the same transaction as the
// migration batch it records.
type SchemaVersion struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	Version int  `gorm:"not null" json:"version"`
}

// TableName explicitly sets the table name for GORM.
func (SchemaVersion) TableName() string {
	return "schema_version"
}
