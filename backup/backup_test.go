package backup

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTestDB(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "observations.db")
	if err := os.WriteFile(dbPath, []byte("not a real database"), 0644); err != nil {
		t.Fatalf("failed to write test db: %v", err)
	}
	return dbPath
}

func TestParseBackupDate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		filename string
		ok       bool
	}{
		{"observations_backup_2026-08-30.zip", true},
		{"observations_backup_2026-8-30.zip", false},
		{"observations_backup_2026-08-30.tar", false},
		{"something_else.zip", false},
		{"observations_backup_.zip", false},
	}
	for _, c := range cases {
		got, ok := parseBackupDate(c.filename)
		if ok != c.ok {
			t.Errorf("parseBackupDate(%q) ok = %v, want %v", c.filename, ok, c.ok)
			continue
		}
		if ok && got.Format("2006-01-02") != "2026-08-30" {
			t.Errorf("parseBackupDate(%q) = %v", c.filename, got)
		}
	}
}

func TestCreateWritesZipWithDatabase(t *testing.T) {
	t.Parallel()
	dbPath := writeTestDB(t)
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	path, err := Create(dbPath, now)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if filepath.Base(path) != "observations_backup_2026-08-30.zip" {
		t.Errorf("unexpected backup filename %q", filepath.Base(path))
	}
	if filepath.Base(filepath.Dir(path)) != FolderName {
		t.Errorf("backup not placed in %s: %s", FolderName, path)
	}

	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("backup is not a readable zip: %v", err)
	}
	defer zr.Close()
	if len(zr.File) != 1 || zr.File[0].Name != "observations.db" {
		t.Errorf("unexpected archive contents: %+v", zr.File)
	}
}

func TestCreateMissingDatabase(t *testing.T) {
	t.Parallel()
	dbPath := filepath.Join(t.TempDir(), "missing.db")
	if _, err := Create(dbPath, time.Now()); err == nil {
		t.Error("expected error for a missing database file")
	}
}

func TestIsNeeded(t *testing.T) {
	t.Parallel()
	dbPath := writeTestDB(t)
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	// no backup yet
	needed, err := IsNeeded(dbPath, now)
	if err != nil {
		t.Fatalf("IsNeeded: %v", err)
	}
	if !needed {
		t.Error("expected a backup to be needed on a fresh store")
	}

	if _, err := Create(dbPath, now); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// fresh backup suppresses the next one
	needed, err = IsNeeded(dbPath, now.Add(3*24*time.Hour))
	if err != nil {
		t.Fatalf("IsNeeded: %v", err)
	}
	if needed {
		t.Error("backup wanted only 3 days after the last one")
	}

	// a week later it is due again
	needed, err = IsNeeded(dbPath, now.Add(7*24*time.Hour))
	if err != nil {
		t.Fatalf("IsNeeded: %v", err)
	}
	if !needed {
		t.Error("backup not wanted 7 days after the last one")
	}
}

func TestLatestBackupDatePicksNewest(t *testing.T) {
	t.Parallel()
	dbPath := writeTestDB(t)
	for _, d := range []time.Time{
		time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 8, 0, 0, 0, 0, time.UTC),
	} {
		if _, err := Create(dbPath, d); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	latest, found, err := LatestBackupDate(dbPath)
	if err != nil {
		t.Fatalf("LatestBackupDate: %v", err)
	}
	if !found {
		t.Fatal("expected to find backups")
	}
	if latest.Format("2006-01-02") != "2026-08-15" {
		t.Errorf("latest = %v, want 2026-08-15", latest)
	}
}

func TestCheckAndCreate(t *testing.T) {
	t.Parallel()
	dbPath := writeTestDB(t)
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	created, path := CheckAndCreate(dbPath, now)
	if !created || path == "" {
		t.Fatalf("expected first check to create a backup, got %v %q", created, path)
	}
	if created, _ := CheckAndCreate(dbPath, now.Add(24*time.Hour)); created {
		t.Error("second check a day later should not create another backup")
	}

	// a missing database is quietly skipped
	if created, _ := CheckAndCreate(filepath.Join(t.TempDir(), "absent.db"), now); created {
		t.Error("missing database must not produce a backup")
	}
}
