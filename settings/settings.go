// Package settings persists the small user-editable settings document:
// warning thresholds, observer location and the chosen database path. It
// is read at startup and rewritten whenever the user changes a value.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/spf13/viper"
)

// defaults applied when the settings file is absent or a key is missing
const (
	DefaultMoonIlluminationWarning = 75.0
	DefaultMoonSeparationWarning   = 60.0
	DefaultDatabasePath            = "observations.db"
)

// Settings is the persisted settings document.
type Settings struct {
	MoonIlluminationWarningPercent float64 `mapstructure:"moon_illumination_warning_percent" json:"moon_illumination_warning_percent"`
	MoonSeparationWarningDegrees   float64 `mapstructure:"moon_angular_separation_warning_deg" json:"moon_angular_separation_warning_deg"`
	Latitude                       float64 `mapstructure:"latitude" json:"latitude"`
	Longitude                      float64 `mapstructure:"longitude" json:"longitude"`
	DatabasePath                   string  `mapstructure:"database_path" json:"database_path"`
}

// Validate rejects values outside their documented ranges.
func (s Settings) Validate() error {
	if s.MoonIlluminationWarningPercent < 0 || s.MoonIlluminationWarningPercent > 100 {
		return fmt.Errorf("moon_illumination_warning_percent %v out of range [0,100]", s.MoonIlluminationWarningPercent)
	}
	if s.MoonSeparationWarningDegrees < 0 || s.MoonSeparationWarningDegrees > 180 {
		return fmt.Errorf("moon_angular_separation_warning_deg %v out of range [0,180]", s.MoonSeparationWarningDegrees)
	}
	if s.Latitude < -90 || s.Latitude > 90 {
		return fmt.Errorf("latitude %v out of range [-90,90]", s.Latitude)
	}
	if s.Longitude < -180 || s.Longitude > 180 {
		return fmt.Errorf("longitude %v out of range [-180,180]", s.Longitude)
	}
	if s.DatabasePath == "" {
		return fmt.Errorf("database_path must not be empty")
	}
	return nil
}

// Store reads and writes the settings document at a fixed path.
type Store struct {
	mu sync.Mutex
	v  *viper.Viper
}

// NewStore returns a store over the JSON settings file at path. The file
// is created with defaults on first Load.
func NewStore(path string) *Store {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetDefault("moon_illumination_warning_percent", DefaultMoonIlluminationWarning)
	v.SetDefault("moon_angular_separation_warning_deg", DefaultMoonSeparationWarning)
	v.SetDefault("latitude", 0.0)
	v.SetDefault("longitude", 0.0)
	v.SetDefault("database_path", DefaultDatabasePath)
	return &Store{v: v}
}

// Load reads the settings file, creating it with defaults when missing.
func (s *Store) Load() (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.v.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("failed to read settings: %w", err)
		}
		if err := s.v.WriteConfig(); err != nil {
			return Settings{}, fmt.Errorf("failed to create settings file: %w", err)
		}
	}

	var cfg Settings
	if err := s.v.Unmarshal(&cfg); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}
	return cfg, nil
}

// Save validates and persists the document.
func (s *Store) Save(cfg Settings) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.v.Set("moon_illumination_warning_percent", cfg.MoonIlluminationWarningPercent)
	s.v.Set("moon_angular_separation_warning_deg", cfg.MoonSeparationWarningDegrees)
	s.v.Set("latitude", cfg.Latitude)
	s.v.Set("longitude", cfg.Longitude)
	s.v.Set("database_path", cfg.DatabasePath)
	if err := s.v.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}
