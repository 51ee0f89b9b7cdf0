package models

// CelestialObject represents an imaging target in the database using GORM.
// It corresponds to the 'objects' table.
// RAHours and DecDegrees are either both set or both nil; a target without
// resolved coordinates is still a valid catalog entry.
type CelestialObject struct {
	ID         uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string   `gorm:"not null;unique" json:"name"`
	RAHours    *float64 `gorm:"column:ra_hours" json:"ra_hours,omitempty"`     // [0,24)
	DecDegrees *float64 `gorm:"column:dec_degrees" json:"dec_degrees,omitempty"` // [-90,90]
}

// TableName explicitly sets the table name for GORM.
func (CelestialObject) TableName() string {
	return "objects"
}
