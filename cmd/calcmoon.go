package cmd

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/skyfell/obslogbackend/astro"
	"github.com/skyfell/obslogbackend/config"
	"github.com/skyfell/obslogbackend/database"
	"github.com/skyfell/obslogbackend/repository"
	"github.com/skyfell/obslogbackend/settings"
)

var calcMoonCmd = &cobra.Command{
	Use:   "calc-moon",
	Short: "Recompute moon data for every stored session",
	Long: `Recomputes illumination and moon position for every session from its
start date and writes the results back. Sessions that fail are reported
and skipped; the rest are still updated.`,
	RunE: runCalcMoon,
}

func init() {
	rootCmd.AddCommand(calcMoonCmd)
}

func runCalcMoon(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	store := settings.NewStore(cfg.SettingsPath)
	appSettings, err := store.Load()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	db, err := database.InitDB(appSettings.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := database.RunMigrations(db); err != nil {
		return fmt.Errorf("schema migration failed: %w", err)
	}

	eph := astro.MeeusEphemeris{}
	sessionRepo := repository.NewSessionRepository(db)
	sessions, err := sessionRepo.ListAll()
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	var failed int
	for i := range sessions {
		session := &sessions[i]
		t, err := time.ParseInLocation("2006-01-02", session.StartDate, time.Local)
		if err != nil {
			log.Printf("Session %q: invalid start date %q, skipping", session.Name, session.StartDate)
			failed++
			continue
		}
		moon, err := astro.MoonIllumination(eph, t)
		if err != nil {
			log.Printf("Session %q: moon computation failed: %v", session.Name, err)
			failed++
			continue
		}
		session.MoonIllumination = &moon.IlluminationPercent
		session.MoonRA = &moon.RADegrees
		session.MoonDec = &moon.DecDegrees
		if err := sessionRepo.Update(session); err != nil {
			log.Printf("Session %q: update failed: %v", session.Name, err)
			failed++
			continue
		}
	}

	fmt.Printf("Recomputed moon data for %d of %d session(s)\n", len(sessions)-failed, len(sessions))
	if failed > 0 {
		return errors.New("some sessions could not be updated")
	}
	return nil
}
