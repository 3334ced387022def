package store

import (
	"alcyxob/wellness-app/internal/domain"
	"sort"
	"time"
)

// WeeklyWindow is the length of the trailing statistics window.
const WeeklyWindow = 7 * 24 * time.Hour

// WeeklyStats aggregates the trailing week of activity.
// AverageMood and AverageEnergy are 0 when the window holds no mood entries;
// since scores start at 1, 0 always means "no data".
type WeeklyStats struct {
	WorkoutsCompleted int     `json:"workoutsCompleted"`
	AverageMood       float64 `json:"averageMood"`
	AverageEnergy     float64 `json:"averageEnergy"`
	TotalMinutes      int     `json:"totalMinutes"`
}

// Now returns the store clock's current time.
func (s *Store) Now() time.Time {
	return s.now()
}

// Location is the time zone used for calendar-day truncation.
func (s *Store) Location() *time.Location {
	return s.now().Location()
}

// WeeklyStats computes aggregates over sessions and mood entries dated within
// [now - 7 days, now]. Only completed sessions count.
func (s *Store) WeeklyStats() WeeklyStats {
	now := s.now()
	from := now.AddDate(0, 0, -7)

	s.mu.RLock()
	defer s.mu.RUnlock()

	var stats WeeklyStats
	for _, session := range s.state.WorkoutSessions {
		if !session.Completed || !inWindow(session.Date, from, now) {
			continue
		}
		stats.WorkoutsCompleted++
		stats.TotalMinutes += session.Duration
	}

	var moodSum, energySum float64
	var moods int
	for _, entry := range s.state.MoodEntries {
		if !inWindow(entry.Date, from, now) {
			continue
		}
		moodSum += entry.Mood
		energySum += entry.Energy
		moods++
	}
	if moods > 0 {
		stats.AverageMood = moodSum / float64(moods)
		stats.AverageEnergy = energySum / float64(moods)
	}
	return stats
}

func inWindow(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}

// StreakDays returns the number of consecutive calendar days, ending today,
// that contain at least one completed session.
//
// Completed sessions are scanned newest first. For each one the distance in
// days from today is compared with the streak so far: equal extends the
// streak, greater means a gap and ends the scan, smaller is a second session
// on an already counted day and is skipped.
func (s *Store) StreakDays() int {
	now := s.now()
	loc := now.Location()

	s.mu.RLock()
	completed := make([]domain.WorkoutSession, 0, len(s.state.WorkoutSessions))
	for _, session := range s.state.WorkoutSessions {
		if session.Completed {
			completed = append(completed, session)
		}
	}
	s.mu.RUnlock()

	if len(completed) == 0 {
		return 0
	}
	sort.SliceStable(completed, func(i, j int) bool {
		return completed[i].Date.After(completed[j].Date)
	})

	today := DateAtLocation(now, loc)
	streak := 0
	for _, session := range completed {
		diff := DaysBetween(session.Date, today, loc)
		if diff == streak {
			streak++
		} else if diff > streak {
			break
		}
	}
	return streak
}
