package main

import (
	"alcyxob/wellness-app/internal/domain"
	"alcyxob/wellness-app/internal/service"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func newOnboardCmd(a *app) *cobra.Command {
	var (
		form  service.OnboardingForm
		level string
	)
	cmd := &cobra.Command{
		Use:   "onboard",
		Short: "Create your profile",
		Long: "Create your profile. Anything left out gets a sensible default.\n\n" +
			"Suggested goals: " + strings.Join(service.SuggestedGoals, ", ") + "\n" +
			"Suggested equipment: " + strings.Join(service.SuggestedEquipment, ", "),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			form.FitnessLevel = domain.FitnessLevel(level)
			// Unset list flags mean "not answered"; an explicit empty list is kept.
			if !cmd.Flags().Changed("goal") {
				form.Goals = nil
			} else if form.Goals == nil {
				form.Goals = []string{}
			}
			if !cmd.Flags().Changed("equipment") {
				form.Equipment = nil
			} else if form.Equipment == nil {
				form.Equipment = []string{}
			}

			u, err := a.onboarding.Complete(form)
			if err != nil {
				return err
			}
			return a.output(cmd.OutOrStdout(), u, func() error {
				fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s! Your profile is ready.\n", u.Name)
				return printProfile(cmd.OutOrStdout(), u)
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&form.Name, "name", "", "Your name")
	f.StringVar(&form.Email, "email", "", "Email address")
	f.IntVar(&form.Age, "age", 0, "Age in years")
	f.StringVar(&form.JobTitle, "job", "", "Job title")
	f.IntVar(&form.WorkHours, "hours", 0, "Working hours per day")
	f.StringVar(&level, "level", "", "Fitness level (beginner, intermediate, advanced)")
	f.StringSliceVar(&form.Goals, "goal", nil, "Goal, may be repeated")
	f.StringSliceVar(&form.Equipment, "equipment", nil, "Available equipment, may be repeated")
	return cmd
}

func newProfileCmd(a *app) *cobra.Command {
	var (
		name, email, job, level      string
		workoutTime, reminderTime    string
		age, hours, duration         int
		goals, equipment, restricted []string
	)
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or edit your profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u := a.store.User()
			if u == nil {
				return errors.New("no profile yet, run 'healthctl onboard' first")
			}

			f := cmd.Flags()
			edited := false
			set := func(flag string, apply func()) {
				if f.Changed(flag) {
					apply()
					edited = true
				}
			}
			set("name", func() { u.Name = name })
			set("email", func() { u.Email = email })
			set("job", func() { u.JobTitle = job })
			set("level", func() { u.FitnessLevel = domain.FitnessLevel(level) })
			set("age", func() { u.Age = age })
			set("hours", func() { u.WorkHours = hours })
			set("goal", func() { u.Goals = goals })
			set("equipment", func() { u.Equipment = equipment })
			set("restriction", func() { u.Restrictions = restricted })
			set("workout-time", func() { u.Preferences.WorkoutTime = workoutTime })
			set("duration", func() { u.Preferences.Duration = duration })
			set("reminder", func() { u.Preferences.ReminderTime = reminderTime })

			if edited {
				var err error
				if u, err = a.onboarding.UpdateProfile(*u); err != nil {
					return err
				}
			}
			return a.output(cmd.OutOrStdout(), u, func() error {
				return printProfile(cmd.OutOrStdout(), u)
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&name, "name", "", "Name")
	f.StringVar(&email, "email", "", "Email address")
	f.StringVar(&job, "job", "", "Job title")
	f.StringVar(&level, "level", "", "Fitness level")
	f.IntVar(&age, "age", 0, "Age in years")
	f.IntVar(&hours, "hours", 0, "Working hours per day")
	f.StringSliceVar(&goals, "goal", nil, "Replace goals")
	f.StringSliceVar(&equipment, "equipment", nil, "Replace equipment")
	f.StringSliceVar(&restricted, "restriction", nil, "Replace restrictions")
	f.StringVar(&workoutTime, "workout-time", "", "Preferred workout time (HH:MM)")
	f.IntVar(&duration, "duration", 0, "Preferred session length in minutes")
	f.StringVar(&reminderTime, "reminder", "", "Daily reminder time (HH:MM)")
	return cmd
}

func printProfile(w io.Writer, u *domain.User) error {
	_, err := fmt.Fprintf(w, `Name:         %s
Email:        %s
Age:          %d
Job:          %s (%dh/day)
Level:        %s
Goals:        %s
Equipment:    %s
Restrictions: %s
Workouts:     %d min at %s, reminder at %s
`,
		u.Name, orDash(u.Email), u.Age, u.JobTitle, u.WorkHours, u.FitnessLevel,
		joinOrDash(u.Goals), joinOrDash(u.Equipment), joinOrDash(u.Restrictions),
		u.Preferences.Duration, u.Preferences.WorkoutTime, u.Preferences.ReminderTime)
	return err
}

func newTabCmd(a *app) *cobra.Command {
	names := make([]string, 0, len(domain.Tabs()))
	for _, t := range domain.Tabs() {
		names = append(names, string(t))
	}
	return &cobra.Command{
		Use:       "tab [name]",
		Short:     "Show or switch the active screen",
		Long:      "Show or switch the active screen (" + strings.Join(names, ", ") + ").\nThe active screen is not saved; every run starts on the dashboard.",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: names,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if err := a.navigation.Switch(args[0]); err != nil {
					return err
				}
			}
			current := a.navigation.Current()
			return a.output(cmd.OutOrStdout(), map[string]string{"activeTab": string(current)}, func() error {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), current)
				return err
			})
		},
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func joinOrDash(items []string) string {
	return orDash(strings.Join(items, ", "))
}
