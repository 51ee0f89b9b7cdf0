package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/skyfell/obslogbackend/backup"
	"github.com/skyfell/obslogbackend/config"
	"github.com/skyfell/obslogbackend/settings"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Create a database backup now",
	Long:  "Creates a zip backup of the database regardless of when the last one was made.",
	RunE:  runBackup,
}

func init() {
	rootCmd.AddCommand(backupCmd)
}

func runBackup(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	appSettings, err := settings.NewStore(cfg.SettingsPath).Load()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	path, err := backup.Create(appSettings.DatabasePath, time.Now())
	if err != nil {
		return err
	}
	fmt.Printf("Backup written to %s\n", path)
	return nil
}
