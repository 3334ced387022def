package service

import (
	"alcyxob/wellness-app/internal/store"
	"fmt"
	"time"
)

// DayStatus summarises the workouts of one calendar day.
type DayStatus string

const (
	DayNone      DayStatus = "none"
	DayStarted   DayStatus = "started"
	DayCompleted DayStatus = "completed"
)

// CalendarDay is one cell of the month grid.
type CalendarDay struct {
	Date     time.Time `json:"date"`
	Status   DayStatus `json:"status"`
	Workouts []string  `json:"workouts,omitempty"`
	Minutes  int       `json:"minutes"`
	HasMood  bool      `json:"hasMood"`
}

// CalendarMonth is a Sunday-first month grid. Leading is the number of
// blank cells before the first day.
type CalendarMonth struct {
	Year    int           `json:"year"`
	Month   time.Month    `json:"month"`
	Leading int           `json:"leading"`
	Days    []CalendarDay `json:"days"`
}

// CalendarService builds month views of the activity history.
type CalendarService interface {
	Month(year int, month time.Month) (CalendarMonth, error)
}

type calendarService struct {
	store *store.Store
}

// NewCalendarService creates a new instance of calendarService.
func NewCalendarService(s *store.Store) CalendarService {
	return &calendarService{store: s}
}

func (s *calendarService) Month(year int, month time.Month) (CalendarMonth, error) {
	if month < time.January || month > time.December {
		return CalendarMonth{}, fmt.Errorf("%w: month %d", ErrValidationFailed, month)
	}
	loc := s.store.Location()
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	days := first.AddDate(0, 1, -1).Day()

	cal := CalendarMonth{
		Year:    year,
		Month:   month,
		Leading: int(first.Weekday()),
		Days:    make([]CalendarDay, days),
	}
	for i := range cal.Days {
		cal.Days[i] = CalendarDay{Date: first.AddDate(0, 0, i), Status: DayNone}
	}

	names := map[string]string{}
	for _, w := range s.store.Workouts() {
		names[w.ID] = w.Name
	}

	for _, session := range s.store.WorkoutSessions() {
		day := dayIndex(session.Date, first, loc, days)
		if day < 0 {
			continue
		}
		cell := &cal.Days[day]
		if name, ok := names[session.WorkoutID]; ok {
			cell.Workouts = append(cell.Workouts, name)
		} else {
			cell.Workouts = append(cell.Workouts, session.WorkoutID)
		}
		if session.Completed {
			cell.Status = DayCompleted
			cell.Minutes += session.Duration
		} else if cell.Status == DayNone {
			cell.Status = DayStarted
		}
	}

	for _, entry := range s.store.MoodEntries() {
		if day := dayIndex(entry.Date, first, loc, days); day >= 0 {
			cal.Days[day].HasMood = true
		}
	}
	return cal, nil
}

// dayIndex returns t's offset from first, or -1 outside the month.
func dayIndex(t, first time.Time, loc *time.Location, days int) int {
	d := store.DaysBetween(first, t, loc)
	if d < 0 || d >= days {
		return -1
	}
	return d
}
