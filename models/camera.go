package models

// Camera represents an imaging camera in the database using GORM.
// It corresponds to the 'cameras' table.
type Camera struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string  `gorm:"not null;unique" json:"name"`
	Sensor    string  `gorm:"not null" json:"sensor"`
	PixelSize float64 `gorm:"not null" json:"pixel_size"` // microns, > 0
	Width     int     `gorm:"not null" json:"width"`      // pixels, > 0
	Height    int     `gorm:"not null" json:"height"`     // pixels, > 0
}

// TableName explicitly sets the table name for GORM.
func (Camera) TableName() string {
	return "cameras"
}
