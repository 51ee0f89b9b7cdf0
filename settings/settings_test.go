package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCreatesDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.json")
	store := NewStore(path)

	cfg, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MoonIlluminationWarningPercent != DefaultMoonIlluminationWarning {
		t.Errorf("illumination warning = %v, want %v", cfg.MoonIlluminationWarningPercent, DefaultMoonIlluminationWarning)
	}
	if cfg.MoonSeparationWarningDegrees != DefaultMoonSeparationWarning {
		t.Errorf("separation warning = %v, want %v", cfg.MoonSeparationWarningDegrees, DefaultMoonSeparationWarning)
	}
	if cfg.Latitude != 0 || cfg.Longitude != 0 {
		t.Errorf("site defaults not zero: %v, %v", cfg.Latitude, cfg.Longitude)
	}
	if cfg.DatabasePath != DefaultDatabasePath {
		t.Errorf("database path = %q, want %q", cfg.DatabasePath, DefaultDatabasePath)
	}

	// the defaults file must now exist on disk
	if _, err := os.Stat(path); err != nil {
		t.Errorf("settings file not created: %v", err)
	}
}

func TestSaveRoundTrips(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.json")
	store := NewStore(path)
	if _, err := store.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := Settings{
		MoonIlluminationWarningPercent: 60,
		MoonSeparationWarningDegrees:   45,
		Latitude:                       42.36,
		Longitude:                      -71.06,
		DatabasePath:                   "obs.db",
	}
	if err := store.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// a fresh store over the same file sees the saved values
	got, err := NewStore(path).Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got != want {
		t.Errorf("reloaded settings = %+v, want %+v", got, want)
	}
}

func TestSaveRejectsInvalidSettings(t *testing.T) {
	t.Parallel()

	store := NewStore(filepath.Join(t.TempDir(), "settings.json"))
	cases := []Settings{
		{MoonIlluminationWarningPercent: 101, MoonSeparationWarningDegrees: 60, DatabasePath: "a.db"},
		{MoonIlluminationWarningPercent: -1, MoonSeparationWarningDegrees: 60, DatabasePath: "a.db"},
		{MoonIlluminationWarningPercent: 75, MoonSeparationWarningDegrees: 181, DatabasePath: "a.db"},
		{MoonIlluminationWarningPercent: 75, MoonSeparationWarningDegrees: 60, Latitude: 91, DatabasePath: "a.db"},
		{MoonIlluminationWarningPercent: 75, MoonSeparationWarningDegrees: 60, Longitude: -181, DatabasePath: "a.db"},
		{MoonIlluminationWarningPercent: 75, MoonSeparationWarningDegrees: 60, DatabasePath: ""},
	}
	for i, c := range cases {
		if err := store.Save(c); err == nil {
			t.Errorf("case %d: expected validation error for %+v", i, c)
		}
	}
}

func TestValidateAcceptsBoundaryValues(t *testing.T) {
	t.Parallel()

	cfg := Settings{
		MoonIlluminationWarningPercent: 100,
		MoonSeparationWarningDegrees:   180,
		Latitude:                       -90,
		Longitude:                      180,
		DatabasePath:                   "a.db",
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("boundary values rejected: %v", err)
	}
}
