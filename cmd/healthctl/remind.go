package main

import (
	"alcyxob/wellness-app/internal/reminder"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRemindCmd(a *app) *cobra.Command {
	var now bool
	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Run the daily reminder until interrupted",
		Long: `Run the daily reminder at your profile's reminder time until interrupted.
When reminder.backup_interval and an S3 bucket are configured, snapshots are
also backed up on that interval.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.store.User() == nil {
				return errors.New("no profile yet, run 'healthctl onboard' first")
			}
			notifier := consoleNotifier{a: a, cmd: cmd}

			var opts []reminder.Option
			opts = append(opts, reminder.WithLogger(a.logger))
			if a.cfg.Reminder.BackupInterval > 0 && a.cfg.S3.Enabled() {
				bs, err := a.backupStorage(cmd.Context())
				if err != nil {
					return err
				}
				opts = append(opts, reminder.WithBackup(a.cfg.Reminder.BackupInterval, func(ctx context.Context) error {
					_, err := a.backup(ctx, bs)
					return err
				}))
			}

			sched, err := reminder.New(a.store, notifier, opts...)
			if err != nil {
				return err
			}
			if now {
				err := sched.RemindNow(cmd.Context())
				if shutdownErr := sched.Shutdown(); shutdownErr != nil {
					a.logger.Warn("Scheduler shutdown failed", zap.Error(shutdownErr))
				}
				return err
			}
			if !a.cfg.Reminder.Enabled {
				_ = sched.Shutdown()
				return errors.New("reminders are disabled (reminder.enabled=false)")
			}

			if err := sched.Start(); err != nil {
				_ = sched.Shutdown()
				return err
			}
			if next, ok := sched.NextReminder(); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "Next reminder at %s. Press Ctrl+C to stop.\n", next.Format("Mon Jan 2 15:04"))
			}

			// Wait for interrupt signal to gracefully shut down the scheduler
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)
			select {
			case <-quit:
			case <-cmd.Context().Done():
			}
			a.logger.Info("Shutting down reminders...")

			if err := sched.Shutdown(); err != nil {
				return fmt.Errorf("scheduler forced to shutdown: %w", err)
			}
			a.logger.Info("Reminders stopped.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&now, "now", false, "Send one reminder immediately and exit")
	return cmd
}

// consoleNotifier prints reminders to the command's output.
type consoleNotifier struct {
	a   *app
	cmd *cobra.Command
}

func (n consoleNotifier) Notify(_ context.Context, r reminder.Reminder) error {
	_, err := fmt.Fprintf(n.cmd.OutOrStdout(), "[%s] %s\n", r.At.Format("15:04"), r.Message())
	if err != nil {
		n.a.logger.Error("Failed to print reminder", zap.Error(err))
	}
	return err
}
