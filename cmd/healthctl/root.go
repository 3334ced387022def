package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "healthctl",
		Short: "Track workouts, mood and energy from the terminal",
		Long: `healthctl keeps a personal wellness log: an onboarding profile,
workout sessions from a small built-in catalog, and daily mood check-ins.

State is saved after every change to the configured backend (a JSON file by
default, SQLite or MongoDB) and can be exported or backed up to S3.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Context())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configDir, "config", ".", "Directory containing config.yaml")
	flags.StringVar(&a.backend, "backend", "", "Storage backend override (file, sqlite, mongo)")
	flags.StringVar(&a.dataDir, "data-dir", "", "Data directory override for the file backend")
	flags.StringVar(&a.key, "key", "", "Storage key override")
	flags.BoolVar(&a.jsonOut, "json", false, "Print machine-readable JSON")

	root.AddCommand(
		newOnboardCmd(a),
		newProfileCmd(a),
		newTabCmd(a),
		newWorkoutCmd(a),
		newMoodCmd(a),
		newDashboardCmd(a),
		newCalendarCmd(a),
		newExportCmd(a),
		newImportCmd(a),
		newBackupCmd(a),
		newRestoreCmd(a),
		newResetCmd(a),
		newRemindCmd(a),
	)
	return root
}
