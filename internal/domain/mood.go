package domain

import "time"

// Score bounds for mood, energy and stress.
const (
	MinScore = 1.0
	MaxScore = 5.0

	MinSleepHours = 3.0
	MaxSleepHours = 12.0
)

// MoodEntry is a daily self-report. Several entries may share a calendar day.
type MoodEntry struct {
	ID     string    `json:"id" yaml:"id"`
	Date   time.Time `json:"date" yaml:"date"`
	Mood   float64   `json:"mood" yaml:"mood"`     // 1-5, half steps
	Energy float64   `json:"energy" yaml:"energy"` // 1-5, half steps
	Stress float64   `json:"stress" yaml:"stress"` // 1-5, half steps
	Sleep  float64   `json:"sleep" yaml:"sleep"`   // Hours
	Notes  string    `json:"notes,omitempty" yaml:"notes,omitempty"`
}
