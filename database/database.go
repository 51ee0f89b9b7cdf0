package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// baseSchema is the version-0 schema. Later structural changes belong in
// the migrations list, never here; a fresh store is created at version 0
// and migrated forward like any other.
const baseSchema = `
CREATE TABLE IF NOT EXISTS objects (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE,
	ra_hours REAL,
	dec_degrees REAL
);

CREATE TABLE IF NOT EXISTS sessions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE,
	start_date TEXT NOT NULL,
	comments TEXT,
	moon_illumination REAL,
	moon_ra REAL,
	moon_dec REAL
);

CREATE TABLE IF NOT EXISTS cameras (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE,
	sensor TEXT NOT NULL,
	pixel_size REAL NOT NULL,
	width INTEGER NOT NULL,
	height INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS filter_types (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS filters (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE,
	type TEXT NOT NULL,
	FOREIGN KEY (type) REFERENCES filter_types(name)
);

CREATE TABLE IF NOT EXISTS telescopes (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE,
	aperture INTEGER NOT NULL,
	f_ratio REAL NOT NULL,
	focal_length INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS observations (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	session_name TEXT NOT NULL,
	object_name TEXT NOT NULL,
	camera_name TEXT NOT NULL,
	telescope_name TEXT NOT NULL,
	filter_name TEXT NOT NULL,
	image_count INTEGER NOT NULL,
	exposure_length INTEGER NOT NULL,
	total_exposure INTEGER NOT NULL,
	comments TEXT,
	FOREIGN KEY (session_name) REFERENCES sessions(name),
	FOREIGN KEY (object_name) REFERENCES objects(name),
	FOREIGN KEY (camera_name) REFERENCES cameras(name),
	FOREIGN KEY (telescope_name) REFERENCES telescopes(name),
	FOREIGN KEY (filter_name) REFERENCES filters(name)
);

CREATE TABLE IF NOT EXISTS schema_version (
	id INTEGER PRIMARY KEY,
	version INTEGER NOT NULL
);
`

// InitDB opens (creating if necessary) the observation store at
// dataSourceName and bootstraps the version-0 schema. It does not run
// migrations; callers are expected to call RunMigrations before touching
// any repository.
func InitDB(dataSourceName string) (*gorm.DB, error) {
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB from GORM: %w", err)
	}
	// single-user desktop tool; one writer is plenty
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// enable write-ahead logging for better concurrency
	if err := db.Exec("PRAGMA journal_mode=WAL;").Error; err != nil {
		log.Printf("warning: failed to set WAL mode: %v", err)
	}

	if err := db.Exec(baseSchema).Error; err != nil {
		return nil, fmt.Errorf("failed to create base schema: %w", err)
	}

	log.Println("database initialized successfully at", dataSourceName)
	return db, nil
}
