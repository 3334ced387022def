package main

import (
	"alcyxob/wellness-app/internal/service"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func newDashboardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Weekly summary, streak and today's mood",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sum := a.dashboard.Summary()
			return a.output(cmd.OutOrStdout(), sum, func() error {
				return printSummary(cmd.OutOrStdout(), sum)
			})
		},
	}
}

func printSummary(w io.Writer, sum service.Summary) error {
	var b strings.Builder
	if sum.UserName != "" {
		fmt.Fprintf(&b, "Hello, %s\n\n", sum.UserName)
	}

	streakMark := "💪"
	if sum.Streak > 0 {
		streakMark = "🔥"
	}
	energy := "-"
	if sum.Weekly.AverageEnergy > 0 {
		energy = fmt.Sprintf("%.1f/5", sum.Weekly.AverageEnergy)
	}
	trend := map[service.Trend]string{service.TrendUp: "↗", service.TrendFlat: "→", service.TrendDown: "↘"}[sum.EnergyTrend]
	mood := "-"
	if sum.TodaysMood != nil {
		mood = fmt.Sprintf("%g/5 %s", sum.TodaysMood.Mood, service.MoodEmoji(sum.TodaysMood.Mood))
	}
	goalMark := "📈"
	switch {
	case sum.GoalPercent >= 100:
		goalMark = "✅"
	case sum.GoalPercent >= 75:
		goalMark = "🎯"
	}

	fmt.Fprintf(&b, "Weekly workouts  %d sessions\n", sum.WeekSessions)
	fmt.Fprintf(&b, "Current streak   %d days %s\n", sum.Streak, streakMark)
	fmt.Fprintf(&b, "Average energy   %s %s\n", energy, trend)
	fmt.Fprintf(&b, "Weekly minutes   %d/%d min %s\n", sum.Weekly.TotalMinutes, sum.WeeklyGoal, progressBar(sum.GoalBar, 20))
	fmt.Fprintf(&b, "Today's mood     %s\n", mood)
	fmt.Fprintf(&b, "Goal progress    %d%% %s\n", int(math.Round(sum.GoalPercent)), goalMark)

	_, err := io.WriteString(w, b.String())
	return err
}

func progressBar(percent float64, width int) string {
	filled := int(math.Round(percent / 100 * float64(width)))
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}

func newCalendarCmd(a *app) *cobra.Command {
	var month string
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Month view of workouts and check-ins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			at := a.store.Now()
			if month != "" {
				parsed, err := time.ParseInLocation("2006-01", month, a.store.Location())
				if err != nil {
					return fmt.Errorf("month must look like 2024-12: %w", err)
				}
				at = parsed
			}
			cal, err := a.calendar.Month(at.Year(), at.Month())
			if err != nil {
				return err
			}
			return a.output(cmd.OutOrStdout(), cal, func() error {
				return printCalendar(cmd.OutOrStdout(), cal)
			})
		},
	}
	cmd.Flags().StringVar(&month, "month", "", "Month to show (YYYY-MM), defaults to the current one")
	return cmd
}

func printCalendar(w io.Writer, cal service.CalendarMonth) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d\n", cal.Month, cal.Year)
	b.WriteString(" Su  Mo  Tu  We  Th  Fr  Sa\n")
	col := 0
	for ; col < cal.Leading; col++ {
		b.WriteString("    ")
	}
	moods := 0
	for _, day := range cal.Days {
		mark := ' '
		switch day.Status {
		case service.DayCompleted:
			mark = '*'
		case service.DayStarted:
			mark = '~'
		}
		fmt.Fprintf(&b, " %2d%c", day.Date.Day(), mark)
		if day.HasMood {
			moods++
		}
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\n* completed  ~ started  check-ins on %d days\n", moods)

	_, err := io.WriteString(w, b.String())
	return err
}
