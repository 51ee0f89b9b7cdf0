package repository

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

// ObjectFilterExposure is one row of the per-object exposure summary:
// the total integration time in seconds for one object through one
// filter type.
type ObjectFilterExposure struct {
	ObjectName    string  `json:"object_name"`
	FilterType    string  `json:"filter_type"`
	TotalExposure float64 `json:"total_exposure_seconds"`
}

// MonthlyExposure is one row of the imaging-time-per-month summary.
// YearMonth is formatted "YYYY-MM".
type MonthlyExposure struct {
	YearMonth  string  `json:"year_month"`
	TotalHours float64 `json:"total_hours"`
}

// StatsRepository runs the read-only aggregate queries for reporting
type StatsRepository struct {
	DB *gorm.DB
}

// NewStatsRepository creates a new instance of StatsRepository
func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{DB: db}
}

var sb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// ObjectStats returns total exposure per object and filter type.
// Filter types order by their configured priority, then name, so the
// rows come back in the order a report should print them.
func (r *StatsRepository) ObjectStats() ([]ObjectFilterExposure, error) {
	query, args, err := sb.
		Select(
			"o.object_name AS object_name",
			"ft.name AS filter_type",
			"SUM(o.total_exposure) AS total_exposure",
		).
		From("observations o").
		Join("filters f ON f.name = o.filter_name").
		Join("filter_types ft ON ft.name = f.type").
		GroupBy("o.object_name", "ft.name").
		OrderBy("o.object_name ASC", "ft.priority ASC", "ft.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build object stats query: %w", err)
	}

	var rows []ObjectFilterExposure
	if err := r.DB.Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query object stats: %w", err)
	}
	return rows, nil
}

// MonthlyStats returns total imaging hours grouped by the calendar
// month of the session the observations belong to.
func (r *StatsRepository) MonthlyStats() ([]MonthlyExposure, error) {
	query, args, err := sb.
		Select(
			"strftime('%Y-%m', s.start_date) AS year_month",
			"SUM(o.total_exposure) / 3600.0 AS total_hours",
		).
		From("observations o").
		Join("sessions s ON s.name = o.session_name").
		GroupBy("year_month").
		OrderBy("year_month ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build monthly stats query: %w", err)
	}

	var rows []MonthlyExposure
	if err := r.DB.Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query monthly stats: %w", err)
	}
	return rows, nil
}
