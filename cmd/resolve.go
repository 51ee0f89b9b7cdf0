package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skyfell/obslogbackend/astro"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [name]",
	Short: "Resolve an object name to ICRS coordinates",
	Long:  "Queries the CDS Sesame service and prints the object's RA and declination.",
	Args:  cobra.ExactArgs(1),
	RunE:  runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	raDeg, decDeg, err := astro.NewResolver().Resolve(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	fmt.Printf("%s\n  RA:  %.6f h (%.6f deg)\n  Dec: %.6f deg\n", args[0], raDeg/15, raDeg, decDeg)
	return nil
}
