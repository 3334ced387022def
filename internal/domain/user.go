package domain

import (
	"fmt"
	"time"
)

// FitnessLevel is the self-assessed training level captured at onboarding.
type FitnessLevel string

// Define constants for fitness levels
const (
	FitnessBeginner     FitnessLevel = "beginner"
	FitnessIntermediate FitnessLevel = "intermediate"
	FitnessAdvanced     FitnessLevel = "advanced"
)

// Valid reports whether l is one of the known fitness levels.
func (l FitnessLevel) Valid() bool {
	switch l {
	case FitnessBeginner, FitnessIntermediate, FitnessAdvanced:
		return true
	}
	return false
}

// Preferences holds the scheduling preferences of a user.
type Preferences struct {
	WorkoutTime  string `json:"workoutTime" yaml:"workoutTime"`   // "HH:MM"
	Duration     int    `json:"duration" yaml:"duration"`         // Target session length, minutes
	ReminderTime string `json:"reminderTime" yaml:"reminderTime"` // "HH:MM"
}

// User is the profile captured when onboarding completes.
// There is at most one user per store; it is replaced wholesale on edit.
type User struct {
	ID           string       `json:"id" yaml:"id"`
	Name         string       `json:"name" yaml:"name"`
	Email        string       `json:"email" yaml:"email"`
	Age          int          `json:"age" yaml:"age"`
	JobTitle     string       `json:"jobTitle" yaml:"jobTitle"`
	WorkHours    int          `json:"workHours" yaml:"workHours"` // Hours per day
	FitnessLevel FitnessLevel `json:"fitnessLevel" yaml:"fitnessLevel"`

	// Free-form lists, no fixed vocabulary.
	Goals        []string `json:"goals" yaml:"goals"`
	Equipment    []string `json:"equipment" yaml:"equipment"`
	Restrictions []string `json:"restrictions" yaml:"restrictions"`

	Preferences Preferences `json:"preferences" yaml:"preferences"`
}

// Clone returns a deep copy of the user.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.Goals = cloneStrings(u.Goals)
	c.Equipment = cloneStrings(u.Equipment)
	c.Restrictions = cloneStrings(u.Restrictions)
	return &c
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// ParseClock parses an "HH:MM" time of day such as Preferences.ReminderTime.
func ParseClock(value string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, 0, fmt.Errorf("expected HH:MM, got %q", value)
	}
	return t.Hour(), t.Minute(), nil
}
