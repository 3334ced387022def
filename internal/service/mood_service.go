package service

import (
	"alcyxob/wellness-app/internal/domain"
	"alcyxob/wellness-app/internal/store"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// ScoreStep is the granularity of mood, energy and stress scores.
const ScoreStep = 0.5

// CheckInInput is one daily self-report as entered by the user.
type CheckInInput struct {
	Mood   float64
	Energy float64
	Stress float64
	Sleep  float64
	Notes  string
}

// DefaultCheckIn is the pre-filled form when no entry exists for today.
var DefaultCheckIn = CheckInInput{Mood: 3, Energy: 3, Stress: 3, Sleep: 7}

// MoodService records and reads mood check-ins.
type MoodService interface {
	CheckIn(in CheckInInput) (domain.MoodEntry, error)
	Today() *domain.MoodEntry
	Recent(n int) []domain.MoodEntry
}

type moodService struct {
	store *store.Store
}

// NewMoodService creates a new instance of moodService.
func NewMoodService(s *store.Store) MoodService {
	return &moodService{store: s}
}

// CheckIn validates the input and appends a new entry. A second check-in on
// the same day adds another entry; nothing is overwritten.
func (s *moodService) CheckIn(in CheckInInput) (domain.MoodEntry, error) {
	if err := ValidateCheckIn(in); err != nil {
		return domain.MoodEntry{}, err
	}
	entry := domain.MoodEntry{
		ID:     uuid.NewString(),
		Date:   s.store.Now(),
		Mood:   in.Mood,
		Energy: in.Energy,
		Stress: in.Stress,
		Sleep:  in.Sleep,
		Notes:  strings.TrimSpace(in.Notes),
	}
	s.store.AddMoodEntry(entry)
	return entry, nil
}

// Today returns the first recorded entry dated today, or nil.
func (s *moodService) Today() *domain.MoodEntry {
	now := s.store.Now()
	for _, entry := range s.store.MoodEntries() {
		if store.SameDay(entry.Date, now, now.Location()) {
			e := entry
			return &e
		}
	}
	return nil
}

// Recent returns the last n recorded entries, newest first.
func (s *moodService) Recent(n int) []domain.MoodEntry {
	entries := s.store.MoodEntries()
	if n >= 0 && n < len(entries) {
		entries = entries[len(entries)-n:]
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
	return entries
}

// ValidateCheckIn checks score ranges and steps.
func ValidateCheckIn(in CheckInInput) error {
	for name, v := range map[string]float64{"mood": in.Mood, "energy": in.Energy, "stress": in.Stress} {
		if v < domain.MinScore || v > domain.MaxScore {
			return fmt.Errorf("%w: %s %.1f not in %.0f-%.0f", ErrValidationFailed, name, v, domain.MinScore, domain.MaxScore)
		}
		if math.Mod(v, ScoreStep) != 0 {
			return fmt.Errorf("%w: %s %.2f is not a multiple of %.1f", ErrValidationFailed, name, v, ScoreStep)
		}
	}
	if in.Sleep < domain.MinSleepHours || in.Sleep > domain.MaxSleepHours {
		return fmt.Errorf("%w: sleep %.1fh not in %.0f-%.0f", ErrValidationFailed, in.Sleep, domain.MinSleepHours, domain.MaxSleepHours)
	}
	return nil
}

// MoodEmoji maps a mood score to its face.
func MoodEmoji(v float64) string {
	switch {
	case v >= 4.5:
		return "😄"
	case v >= 3.5:
		return "😊"
	case v >= 2.5:
		return "😐"
	case v >= 1.5:
		return "😟"
	default:
		return "😢"
	}
}

// EnergyEmoji maps an energy score to its symbol.
func EnergyEmoji(v float64) string {
	switch {
	case v >= 4.5:
		return "⚡"
	case v >= 2.5:
		return "🔋"
	case v >= 1.5:
		return "🪫"
	default:
		return "😴"
	}
}

// StressEmoji maps a stress score to its face.
func StressEmoji(v float64) string {
	switch {
	case v >= 4.5:
		return "🤯"
	case v >= 3.5:
		return "😰"
	case v >= 2.5:
		return "😬"
	case v >= 1.5:
		return "😌"
	default:
		return "😇"
	}
}
