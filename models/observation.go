package models

// Observation represents a single object/equipment/filter exposure record
// in the database using GORM. It corresponds to the 'observations' table.
// The name columns reference the named entity tables; they are validated
// at write time, not enforced by SQLite.
//
// TotalExposure is always ImageCount * ExposureLength and is recomputed by
// the repository on every create and update; it is never accepted from the
// caller.
type Observation struct {
	ID            uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	SessionName   string  `gorm:"column:session_name;not null" json:"session_name"`
	ObjectName    string  `gorm:"column:object_name;not null" json:"object_name"`
	CameraName    string  `gorm:"column:camera_name;not null" json:"camera_name"`
	TelescopeName string  `gorm:"column:telescope_name;not null" json:"telescope_name"`
	FilterName    string  `gorm:"column:filter_name;not null" json:"filter_name"`
	ImageCount    int     `gorm:"not null" json:"image_count"`      // > 0
	ExposureLength int    `gorm:"not null" json:"exposure_length"`  // seconds, > 0
	TotalExposure int     `gorm:"not null" json:"total_exposure"`   // seconds, derived
	Comments      *string `gorm:"" json:"comments,omitempty"`       // Nullable
}

// TableName explicitly sets the table name for GORM.
func (Observation) TableName() string {
	return "observations"
}
