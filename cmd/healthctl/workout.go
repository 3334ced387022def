package main

import (
	"alcyxob/wellness-app/internal/domain"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func newWorkoutCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workout",
		Short: "Browse workouts and record sessions",
	}
	cmd.AddCommand(
		newWorkoutListCmd(a),
		newWorkoutHistoryCmd(a),
		newWorkoutStartCmd(a),
		newWorkoutFinishCmd(a),
		newWorkoutCompleteCmd(a),
		newWorkoutRateCmd(a),
	)
	return cmd
}

func newWorkoutListCmd(a *app) *cobra.Command {
	var details bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the workout catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			workouts := a.workouts.List()
			return a.output(cmd.OutOrStdout(), workouts, func() error {
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tNAME\tTYPE\tMIN\tLEVEL\tWHERE\tEQUIPMENT")
				for _, w := range workouts {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
						w.ID, w.Name, w.Type, w.Duration, w.Difficulty, w.Category, joinOrDash(w.Equipment))
				}
				if err := tw.Flush(); err != nil {
					return err
				}
				if details {
					for _, w := range workouts {
						fmt.Fprintf(cmd.OutOrStdout(), "\n%s: %s\n", w.Name, w.Description)
						for i, step := range w.Instructions {
							fmt.Fprintf(cmd.OutOrStdout(), "  %d. %s\n", i+1, step)
						}
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&details, "details", false, "Show descriptions and instructions")
	return cmd
}

func newWorkoutHistoryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List recorded sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions := a.store.WorkoutSessions()
			return a.output(cmd.OutOrStdout(), sessions, func() error {
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "SESSION\tDATE\tWORKOUT\tMIN\tDONE\tRATING\tNOTES")
				for _, s := range sessions {
					name := s.WorkoutID
					if w, ok := a.store.WorkoutByID(s.WorkoutID); ok {
						name = w.Name
					}
					fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%t\t%s\t%s\n",
						s.ID, s.Date.In(a.store.Location()).Format("2006-01-02 15:04"), name,
						s.Duration, s.Completed, ratingStars(s), orDash(s.Notes))
				}
				return tw.Flush()
			})
		},
	}
}

func newWorkoutStartCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "start <workout-id>",
		Short: "Log a quick start of a catalog workout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := a.workouts.StartQuick(args[0])
			if err != nil {
				return err
			}
			return a.output(cmd.OutOrStdout(), session, func() error {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "Started session %s (%d min)\n", session.ID, session.Duration)
				return err
			})
		},
	}
}

func newWorkoutFinishCmd(a *app) *cobra.Command {
	var (
		elapsed   time.Duration
		completed bool
	)
	cmd := &cobra.Command{
		Use:   "finish <workout-id>",
		Short: "Record a timed workout",
		Long: `Record a timed workout. Stopped workouts are only kept when they ran
for more than a minute, and get a neutral rating of 3.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := a.workouts.Finish(args[0], elapsed, completed)
			if err != nil {
				return err
			}
			if session == nil {
				return a.output(cmd.OutOrStdout(), nil, func() error {
					_, err := fmt.Fprintln(cmd.OutOrStdout(), "Too short to record.")
					return err
				})
			}
			return a.output(cmd.OutOrStdout(), session, func() error {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "Recorded session %s (%d min, completed: %t)\n",
					session.ID, session.Duration, session.Completed)
				return err
			})
		},
	}
	cmd.Flags().DurationVar(&elapsed, "elapsed", 0, "Time spent, e.g. 12m30s")
	cmd.Flags().BoolVar(&completed, "completed", false, "The workout was finished")
	return cmd
}

func newWorkoutCompleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <session-id>",
		Short: "Mark a started session as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.workouts.Complete(args[0]); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Session %s completed\n", args[0])
			return err
		},
	}
}

func newWorkoutRateCmd(a *app) *cobra.Command {
	var notes string
	cmd := &cobra.Command{
		Use:   "rate <session-id> <1-5>",
		Short: "Rate a session",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rating, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("rating must be a number: %w", err)
			}
			if err := a.workouts.Rate(args[0], rating, notes); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Rated %s %s\n", args[0], strings.Repeat("★", rating))
			return err
		},
	}
	cmd.Flags().StringVar(&notes, "notes", "", "Optional notes")
	return cmd
}

func ratingStars(s domain.WorkoutSession) string {
	if s.Rating == nil {
		return "-"
	}
	return strings.Repeat("★", *s.Rating)
}
