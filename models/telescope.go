package models

// Telescope represents a telescope in the database using GORM.
// It corresponds to the 'telescopes' table.
// FRatio is focal_length / aperture; the UI pre-fills it but the stored
// value is whatever the user confirmed.
type Telescope struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"not null;unique" json:"name"`
	Aperture    int     `gorm:"not null" json:"aperture"`         // mm, > 0
	FRatio      float64 `gorm:"column:f_ratio;not null" json:"f_ratio"` // > 0
	FocalLength int     `gorm:"not null" json:"focal_length"`     // mm, > 0
}

// TableName explicitly sets the table name for GORM.
func (Telescope) TableName() string {
	return "telescopes"
}
