package models

// Session represents an observing session in the database using GORM.
// It corresponds to the 'sessions' table.
// StartDate is a calendar date stored as TEXT in "YYYY-MM-DD" form. The
// moon fields are derived from StartDate at write time and are never
// hand-entered.
type Session struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string  `gorm:"not null;unique" json:"name"`
	StartDate string  `gorm:"not null" json:"start_date"`
	Comments  *string `gorm:"" json:"comments,omitempty"` // Nullable

	MoonIllumination *float64 `gorm:"column:moon_illumination" json:"moon_illumination,omitempty"` // percent [0,100]
	MoonRA           *float64 `gorm:"column:moon_ra" json:"moon_ra,omitempty"`                     // degrees [0,360)
	MoonDec          *float64 `gorm:"column:moon_dec" json:"moon_dec,omitempty"`                   // degrees [-90,90]
}

// TableName explicitly sets the table name for GORM.
func (Session) TableName() string {
	return "sessions"
}
