// Package main provides the solsense CLI, the launcher for the SolSense
// GeoTIFF Slope Viewer.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lawrenceliwanag-lspu/Solsense-latest/pkg/logging"
)

// version is set via -ldflags during build
var version = "dev"

func main() {
	logging.Init(logging.FromEnv())

	rootCmd := newRootCmd()

	// Cobra handles error printing
	rootCmd.SilenceUsage = true

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd creates the root command for solsense.
func newRootCmd() *cobra.Command {
	var plain bool

	rootCmd := &cobra.Command{
		Use:   "solsense",
		Short: "Launcher for the SolSense GeoTIFF Slope Viewer",
		Long: `solsense verifies the Python runtime, installs the viewer's package set
once per user, and starts the viewer as a detached process.

The one-time setup is recorded with a marker file in the system temp
directory; delete it (or run 'solsense reset') to force a reinstall.

Running with no subcommand is the same as 'solsense launch'.`,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLaunch(plain)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "Disable the interactive progress display")

	rootCmd.AddCommand(
		newLaunchCmd(&plain),
		newDoctorCmd(),
		newSetupCmd(&plain),
		newStatusCmd(),
		newResetCmd(),
		newPackagesCmd(),
	)

	return rootCmd
}
