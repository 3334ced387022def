package main

import (
	"alcyxob/wellness-app/internal/export"
	"alcyxob/wellness-app/internal/storage"
	"alcyxob/wellness-app/internal/store"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newExportCmd(a *app) *cobra.Command {
	var format, out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write your data as JSON or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(formatFor(format, out))
			if err != nil {
				return err
			}
			if out == "" || out == "-" {
				return export.Write(cmd.OutOrStdout(), a.store.Snapshot(), f)
			}

			file, err := a.fs.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			if err := export.Write(file, a.store.Snapshot(), f); err != nil {
				file.Close()
				return err
			}
			if err := file.Close(); err != nil {
				return err
			}
			a.logger.Info("Exported snapshot", zap.String("path", out), zap.String("format", string(f)))
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", out)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "json or yaml (default from the file extension, else json)")
	cmd.Flags().StringVarP(&out, "output", "o", "", "Output file (default stdout)")
	return cmd
}

func newImportCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace your data with an export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(formatFor(format, args[0]))
			if err != nil {
				return err
			}
			file, err := a.fs.Open(args[0])
			if err != nil {
				return fmt.Errorf("open %s: %w", args[0], err)
			}
			defer file.Close()

			snap, err := export.Read(file, f)
			if err != nil {
				return err
			}
			a.store.Restore(snap)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d sessions and %d check-ins\n",
				len(snap.WorkoutSessions), len(snap.MoodEntries))
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "json or yaml (default from the file extension)")
	return cmd
}

// formatFor returns the explicit format or one guessed from the file name.
func formatFor(explicit, name string) string {
	if explicit != "" {
		return explicit
	}
	return strings.TrimPrefix(filepath.Ext(name), ".")
}

func newBackupCmd(a *app) *cobra.Command {
	var withURL bool
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Upload a snapshot to S3",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bs, err := a.backupStorage(cmd.Context())
			if err != nil {
				return err
			}
			key, err := a.backup(cmd.Context(), bs)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Backed up to %s\n", key)
			if withURL {
				url, err := bs.GeneratePresignedDownloadURL(cmd.Context(), key, storage.DefaultPresignedURLExpiry)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), url)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&withURL, "url", false, "Also print a temporary download link")
	return cmd
}

func newRestoreCmd(a *app) *cobra.Command {
	var objectKey string
	var prune bool
	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Replace your data with a backup from S3",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bs, err := a.backupStorage(cmd.Context())
			if err != nil {
				return err
			}
			data, err := storage.RestoreSnapshot(cmd.Context(), bs, a.cfg.S3.Prefix, a.store.Key(), objectKey)
			if err != nil {
				if errors.Is(err, storage.ErrObjectNotFound) {
					return fmt.Errorf("no backup found for %q", a.store.Key())
				}
				return err
			}
			snap, err := store.DecodeSnapshot(data)
			if err != nil {
				return err
			}
			a.store.Restore(snap)
			fmt.Fprintf(cmd.OutOrStdout(), "Restored %d sessions and %d check-ins\n",
				len(snap.WorkoutSessions), len(snap.MoodEntries))

			if prune && objectKey != "" {
				return bs.DeleteObject(cmd.Context(), objectKey)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&objectKey, "object", "", "Backup object key (default: latest)")
	cmd.Flags().BoolVar(&prune, "delete", false, "Delete the backup object after restoring it")
	return cmd
}

func newResetCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all data, including your profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("reset deletes everything; pass --yes to confirm")
			}
			a.store.Reset()
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "All data cleared.")
			return err
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the reset")
	return cmd
}
