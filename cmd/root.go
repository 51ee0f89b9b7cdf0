package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "obslog",
	Short: "Astrophotography observation log backend",
	Long: `obslog keeps a catalog of observing sessions, targets, equipment and
exposures in a local SQLite database, computes moon conditions and
meridian transits for them, and serves the whole thing over HTTP.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
