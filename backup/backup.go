package backup

import (
	"archive/zip"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FolderName is the backup directory created next to the database file
const FolderName = "ObsLogBackup"

// IntervalDays is how old the newest backup may be before a new one is due
const IntervalDays = 7

const filePrefix = "observations_backup_"

// backupDir returns the backup folder path for the given database file
func backupDir(dbPath string) string {
	return filepath.Join(filepath.Dir(dbPath), FolderName)
}

// parseBackupDate extracts the date from a backup filename like
// observations_backup_2026-08-30.zip. Files that do not match the
// naming scheme are ignored.
func parseBackupDate(filename string) (time.Time, bool) {
	if !strings.HasPrefix(filename, filePrefix) || !strings.HasSuffix(filename, ".zip") {
		return time.Time{}, false
	}
	datePart := strings.TrimSuffix(strings.TrimPrefix(filename, filePrefix), ".zip")
	t, err := time.Parse("2006-01-02", datePart)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// LatestBackupDate scans the backup folder and returns the date of the
// newest backup. ok is false when no valid backup exists, including
// when the folder itself is missing.
func LatestBackupDate(dbPath string) (time.Time, bool, error) {
	entries, err := os.ReadDir(backupDir(dbPath))
	if err != nil {
		if os.IsNotExist(err) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var latest time.Time
	found := false
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		t, ok := parseBackupDate(entry.Name())
		if !ok {
			continue
		}
		if !found || t.After(latest) {
			latest = t
			found = true
		}
	}
	return latest, found, nil
}

// IsNeeded reports whether a new backup is due at the given time
func IsNeeded(dbPath string, now time.Time) (bool, error) {
	latest, found, err := LatestBackupDate(dbPath)
	if err != nil {
		return false, err
	}
	if !found {
		return true, nil
	}
	return now.Sub(latest) >= IntervalDays*24*time.Hour, nil
}

// Create zips the database file into the backup folder, named by the
// given date. An existing backup for the same date is overwritten.
func Create(dbPath string, now time.Time) (string, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return "", fmt.Errorf("database file not found at %s: %w", dbPath, err)
	}

	dir := backupDir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create backup directory %s: %w", dir, err)
	}

	zipFilename := fmt.Sprintf("%s%s.zip", filePrefix, now.Format("2006-01-02"))
	zipFilePath := filepath.Join(dir, zipFilename)

	zipFile, err := os.Create(zipFilePath)
	if err != nil {
		return "", fmt.Errorf("failed to create backup file %s: %w", zipFilePath, err)
	}
	defer zipFile.Close()

	zipWriter := zip.NewWriter(zipFile)

	dbFile, err := os.Open(dbPath)
	if err != nil {
		zipWriter.Close()
		os.Remove(zipFilePath)
		return "", fmt.Errorf("failed to open database for backup: %w", err)
	}
	defer dbFile.Close()

	writer, err := zipWriter.Create(filepath.Base(dbPath))
	if err != nil {
		zipWriter.Close()
		os.Remove(zipFilePath)
		return "", fmt.Errorf("failed to create zip entry: %w", err)
	}
	if _, err := io.Copy(writer, dbFile); err != nil {
		zipWriter.Close()
		os.Remove(zipFilePath)
		return "", fmt.Errorf("failed to write database to backup: %w", err)
	}

	if err := zipWriter.Close(); err != nil {
		os.Remove(zipFilePath)
		return "", fmt.Errorf("failed to finalize backup %s: %w", zipFilePath, err)
	}
	return zipFilePath, nil
}

// CheckAndCreate makes a backup if one is due. It never fails startup:
// problems are logged and reported through the return values only.
func CheckAndCreate(dbPath string, now time.Time) (bool, string) {
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		// nothing to back up on first run
		return false, ""
	}
	needed, err := IsNeeded(dbPath, now)
	if err != nil {
		log.Printf("Backup check failed: %v", err)
		return false, ""
	}
	if !needed {
		return false, ""
	}
	path, err := Create(dbPath, now)
	if err != nil {
		log.Printf("Backup creation failed: %v", err)
		return false, ""
	}
	log.Printf("Created weekly backup: %s", path)
	return true, path
}
