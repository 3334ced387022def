package service

import (
	"alcyxob/wellness-app/internal/domain"
	"alcyxob/wellness-app/internal/store"
	"math"
)

// DefaultWeeklyGoal is the weekly target in minutes when no preference is set.
const DefaultWeeklyGoal = 140

// Trend is the direction shown next to the average energy.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendFlat Trend = "flat"
	TrendDown Trend = "down"
)

// Summary is what the dashboard shows.
type Summary struct {
	UserName string            `json:"userName,omitempty"`
	Weekly   store.WeeklyStats `json:"weekly"`
	Streak   int               `json:"streakDays"`
	// WeekSessions counts completed sessions in the trailing week.
	WeekSessions int `json:"weekSessions"`
	WeeklyGoal   int `json:"weeklyGoalMinutes"`
	// GoalPercent is uncapped; GoalBar is clamped to 100 for progress bars.
	GoalPercent float64           `json:"goalPercent"`
	GoalBar     float64           `json:"goalBar"`
	EnergyTrend Trend             `json:"energyTrend"`
	TodaysMood  *domain.MoodEntry `json:"todaysMood,omitempty"`
}

// DashboardService computes the dashboard figures.
type DashboardService interface {
	Summary() Summary
}

type dashboardService struct {
	store *store.Store
	moods MoodService
}

// NewDashboardService creates a new instance of dashboardService.
func NewDashboardService(s *store.Store, moods MoodService) DashboardService {
	return &dashboardService{store: s, moods: moods}
}

func (s *dashboardService) Summary() Summary {
	weekly := s.store.WeeklyStats()
	user := s.store.User()

	goal := WeeklyGoal(user)
	percent := float64(weekly.TotalMinutes) / float64(goal) * 100

	sum := Summary{
		Weekly:       weekly,
		Streak:       s.store.StreakDays(),
		WeekSessions: weekly.WorkoutsCompleted,
		WeeklyGoal:   goal,
		GoalPercent:  percent,
		GoalBar:      math.Min(percent, 100),
		EnergyTrend:  EnergyTrend(weekly.AverageEnergy),
		TodaysMood:   s.moods.Today(),
	}
	if user != nil {
		sum.UserName = user.Name
	}
	return sum
}

// WeeklyGoal rounds seven daily sessions up to the next 20 minutes.
func WeeklyGoal(u *domain.User) int {
	if u == nil || u.Preferences.Duration <= 0 {
		return DefaultWeeklyGoal
	}
	return int(math.Ceil(float64(u.Preferences.Duration*7)/20)) * 20
}

// EnergyTrend classifies an average energy score.
func EnergyTrend(avg float64) Trend {
	switch {
	case avg >= 3.5:
		return TrendUp
	case avg >= 2.5:
		return TrendFlat
	default:
		return TrendDown
	}
}
