package models

// FilterType represents a filter category (e.g. Ha, OIII, Luminance) in the
// database using GORM. It corresponds to the 'filter_types' table.
// Priority orders the per-type columns in the object stats report; the
// column is added by schema migration 1 and defaults to 0.
type FilterType struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"not null;unique" json:"name"`
	Priority int    `gorm:"not null;default:0" json:"priority"`
}

// TableName explicitly sets the table name for GORM.
func (FilterType) TableName() string {
	return "filter_types"
}

// Filter represents a physical filter in the database using GORM.
// It corresponds to the 'filters' table. Type references
// filter_types.name.
type Filter struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"not null;unique" json:"name"`
	Type string `gorm:"not null" json:"type"`
}

// TableName explicitly sets the table name for GORM.
func (Filter) TableName() string {
	return "filters"
}
