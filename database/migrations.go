package database

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/skyfell/obslogbackend/models"
)

// migrations is the ordered list of schema-altering statements, 1-indexed:
// migration N is migrations[N-1]. Statements are appended here and never
// edited or reordered once released.
var migrations = []string{
	// Migration 1: add priority column to filter_types
	"ALTER TABLE filter_types ADD COLUMN priority INTEGER DEFAULT 0",
}

// TargetVersion is the schema version this build expects.
var TargetVersion = len(migrations)

// ErrDowngrade indicates the store was written by a newer build than this
// one. It must abort startup; running an old build against a newer schema
// is not supported.
var ErrDowngrade = errors.New("database schema is newer than this build: downgrade not supported")

// CurrentVersion reads the persisted schema version, initializing the
// counter row to 0 on a fresh store.
func CurrentVersion(db *gorm.DB) (int, error) {
	var sv models.SchemaVersion
	err := db.First(&sv, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		sv = models.SchemaVersion{ID: 1, Version: 0}
		if err := db.Create(&sv).Error; err != nil {
			return 0, fmt.Errorf("failed to initialize schema version: %w", err)
		}
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return sv.Version, nil
}

// RunMigrations brings the store from its recorded version up to
// TargetVersion. The whole batch, including the version bump, commits as a
// single transaction; on any failure the store is left untouched at its
// prior version and the error is returned (callers treat it as fatal).
// Re-entry at the target version is a no-op.
func RunMigrations(db *gorm.DB) error {
	return migrate(db, migrations, TargetVersion)
}

func migrate(db *gorm.DB, list []string, target int) error {
	if target < 0 || target > len(list) {
		return fmt.Errorf("invalid migration target %d (have %d migrations)", target, len(list))
	}

	current, err := CurrentVersion(db)
	if err != nil {
		return err
	}
	if current > target {
		return fmt.Errorf("store is at version %d, build targets %d: %w", current, target, ErrDowngrade)
	}
	if current == target {
		return nil
	}

	log.Printf("migrating database schema from version %d to %d", current, target)
	err = db.Transaction(func(tx *gorm.DB) error {
		for i := current + 1; i <= target; i++ {
			if err := tx.Exec(list[i-1]).Error; err != nil {
				return fmt.Errorf("migration %d failed: %w", i, err)
			}
			log.Printf("applied migration %d", i)
		}
		res := tx.Model(&models.SchemaVersion{}).Where("id = ?", 1).Update("version", target)
		if res.Error != nil {
			return fmt.Errorf("failed to record schema version %d: %w", target, res.Error)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Printf("database schema now at version %d", target)
	return nil
}
