package main

import "github.com/spf13/cobra"

// newLaunchCmd creates the launch subcommand (same as the bare root command).
func newLaunchCmd(plain *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "launch",
		Short: "Provision the environment if needed and start SolSense",
		Long: `Run the full launch flow: preflight checks, the one-time package setup
(skipped when the install marker is present), then start the viewer as a
detached process and probe that it stayed alive.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLaunch(*plain)
		},
	}
}

// newDoctorCmd creates the doctor subcommand.
func newDoctorCmd() *cobra.Command {
	var fix bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check runtime prerequisites",
		Long: `Check the Python interpreter, pip, the tkinter binding, the native GDAL
stack, and the application files, and report what is missing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(fix)
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, "Offer to run install commands for missing prerequisites")

	return cmd
}

// newSetupCmd creates the setup subcommand.
func newSetupCmd(plain *bool) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Run the package setup pass without launching",
		Long: `Install the viewer's Python packages in order. Skipped when the install
marker is present unless --force is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetup(force, *plain)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Re-run setup even if the install marker is present")

	return cmd
}

// newStatusCmd creates the status subcommand.
func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the install marker and settings in effect",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus()
		},
	}
}

// newResetCmd creates the reset subcommand.
func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Remove the install marker to force a reinstall",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReset()
		},
	}
}

// newPackagesCmd creates the packages subcommand.
func newPackagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "packages",
		Short: "List the package manifest in install order",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPackages()
		},
	}
}
