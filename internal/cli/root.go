// Package cli wires the phbuddy commands together.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// configFlag is the global --config override, threaded to every command.
var configFlag string

// rootCmd is the base command; running it bare prints help.
var rootCmd = &cobra.Command{
	Use:   "phbuddy",
	Short: "Saliva pH monitor for kids",
	Long: `phbuddy watches a saliva pH sensor and turns the readings into a
child-friendly dashboard: a live chart, acidity bands with silly names,
a tooth health score, and stars for staying in the healthy zone.

Runs against a serial pH sensor, or fully simulated with --sim.

Examples:
  phbuddy watch
  phbuddy watch --sim
  phbuddy watch --port /dev/ttyACM0 --interval 5s
  phbuddy calibrate`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file")
}

// Execute runs the root command and maps failures to exit code 1.
// Structured errors print their own suggestion lines.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
