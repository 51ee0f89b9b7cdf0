package database

import (
	"errors"
	"path/filepath"
	"testing"

	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := InitDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	return db
}

func versionOf(t *testing.T, db *gorm.DB) int {
	t.Helper()
	v, err := CurrentVersion(db)
	if err != nil {
		t.Fatalf("failed to read schema version: %v", err)
	}
	return v
}

func TestCurrentVersionFreshStore(t *testing.T) {
	db := openTestDB(t)
	if v := versionOf(t, db); v != 0 {
		t.Errorf("fresh store version = %d, want 0", v)
	}
	// the counter row persists once initialized
	if v := versionOf(t, db); v != 0 {
		t.Errorf("second read = %d, want 0", v)
	}
}

func TestRunMigrations(t *testing.T) {
	db := openTestDB(t)

	if err := RunMigrations(db); err != nil {
		t.Fatalf("migration failed: %v", err)
	}
	if v := versionOf(t, db); v != TargetVersion {
		t.Errorf("version = %d, want %d", v, TargetVersion)
	}

	// migration 1 added filter_types.priority
	if err := db.Exec("INSERT INTO filter_types (name, priority) VALUES ('Ha', 3)").Error; err != nil {
		t.Errorf("priority column missing after migration: %v", err)
	}

	// running again at the target version is a no-op
	if err := RunMigrations(db); err != nil {
		t.Errorf("re-running migrations at target version failed: %v", err)
	}
}

func TestMigrateAppliesOnlyPending(t *testing.T) {
	db := openTestDB(t)

	list := []string{
		"CREATE TABLE mig_one (id INTEGER PRIMARY KEY)",
		"CREATE TABLE mig_two (id INTEGER PRIMARY KEY)",
	}

	if err := migrate(db, list, 1); err != nil {
		t.Fatalf("migrating to version 1 failed: %v", err)
	}
	if v := versionOf(t, db); v != 1 {
		t.Fatalf("version = %d, want 1", v)
	}

	// advancing to 2 must not re-run migration 1; re-creating mig_one
	// would fail with "table already exists"
	if err := migrate(db, list, 2); err != nil {
		t.Fatalf("migrating to version 2 failed: %v", err)
	}
	if v := versionOf(t, db); v != 2 {
		t.Errorf("version = %d, want 2", v)
	}
}

func TestMigrateFailureLeavesVersionUntouched(t *testing.T) {
	db := openTestDB(t)

	list := []string{
		"CREATE TABLE mig_ok (id INTEGER PRIMARY KEY)",
		"THIS IS NOT SQL",
	}

	err := migrate(db, list, 2)
	if err == nil {
		t.Fatal("expected the broken migration to fail")
	}
	if v := versionOf(t, db); v != 0 {
		t.Errorf("version advanced to %d despite failed batch, want 0", v)
	}
}

func TestMigrateRejectsDowngrade(t *testing.T) {
	db := openTestDB(t)

	list := []string{"CREATE TABLE mig_one (id INTEGER PRIMARY KEY)"}
	if err := migrate(db, list, 1); err != nil {
		t.Fatalf("migrating to version 1 failed: %v", err)
	}

	err := migrate(db, list, 0)
	if !errors.Is(err, ErrDowngrade) {
		t.Errorf("expected ErrDowngrade, got %v", err)
	}
	if v := versionOf(t, db); v != 1 {
		t.Errorf("version changed to %d on rejected downgrade, want 1", v)
	}
}

func TestMigrateRejectsInvalidTarget(t *testing.T) {
	db := openTestDB(t)
	if err := migrate(db, nil, 5); err == nil {
		t.Error("expected error for target beyond the migration list")
	}
}
