package main

import (
	"alcyxob/wellness-app/internal/service"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newMoodCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mood",
		Short: "Daily mood check-ins",
	}
	cmd.AddCommand(newMoodLogCmd(a), newMoodTodayCmd(a), newMoodRecentCmd(a))
	return cmd
}

func newMoodLogCmd(a *app) *cobra.Command {
	in := service.DefaultCheckIn
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record a check-in",
		Long:  "Record a check-in. Scores go from 1 to 5 in half steps, sleep from 3 to 12 hours.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := a.moods.CheckIn(in)
			if err != nil {
				return err
			}
			return a.output(cmd.OutOrStdout(), entry, func() error {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "Logged mood %s %.1f, energy %s %.1f, stress %s %.1f, sleep %.1fh\n",
					service.MoodEmoji(entry.Mood), entry.Mood,
					service.EnergyEmoji(entry.Energy), entry.Energy,
					service.StressEmoji(entry.Stress), entry.Stress,
					entry.Sleep)
				return err
			})
		},
	}
	f := cmd.Flags()
	f.Float64Var(&in.Mood, "mood", in.Mood, "Mood, 1-5")
	f.Float64Var(&in.Energy, "energy", in.Energy, "Energy, 1-5")
	f.Float64Var(&in.Stress, "stress", in.Stress, "Stress, 1-5")
	f.Float64Var(&in.Sleep, "sleep", in.Sleep, "Hours slept")
	f.StringVar(&in.Notes, "notes", "", "Optional notes")
	return cmd
}

func newMoodTodayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's check-in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entry := a.moods.Today()
			return a.output(cmd.OutOrStdout(), entry, func() error {
				if entry == nil {
					_, err := fmt.Fprintln(cmd.OutOrStdout(), "No check-in yet today.")
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "Mood %s %.1f  Energy %s %.1f  Stress %s %.1f  Sleep %.1fh\n",
					service.MoodEmoji(entry.Mood), entry.Mood,
					service.EnergyEmoji(entry.Energy), entry.Energy,
					service.StressEmoji(entry.Stress), entry.Stress,
					entry.Sleep)
				return err
			})
		},
	}
}

func newMoodRecentCmd(a *app) *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Show the latest check-ins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := a.moods.Recent(n)
			return a.output(cmd.OutOrStdout(), entries, func() error {
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "DATE\tMOOD\tENERGY\tSTRESS\tSLEEP\tNOTES")
				for _, e := range entries {
					fmt.Fprintf(tw, "%s\t%s %.1f\t%.1f\t%.1f\t%.1fh\t%s\n",
						e.Date.In(a.store.Location()).Format("Mon Jan 2"),
						service.MoodEmoji(e.Mood), e.Mood, e.Energy, e.Stress, e.Sleep, orDash(e.Notes))
				}
				return tw.Flush()
			})
		},
	}
	cmd.Flags().IntVarP(&n, "count", "n", 7, "Number of entries")
	return cmd
}
