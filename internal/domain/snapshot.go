package domain

// Snapshot is the persisted subset of the store state.
// The workout catalog and the active tab are deliberately absent.
type Snapshot struct {
	User            *User            `json:"user" yaml:"user"`
	IsOnboarded     bool             `json:"isOnboarded" yaml:"isOnboarded"`
	WorkoutSessions []WorkoutSession `json:"workoutSessions" yaml:"workoutSessions"`
	MoodEntries     []MoodEntry      `json:"moodEntries" yaml:"moodEntries"`
}

// Normalize replaces nil collections with empty ones so that a snapshot
// always serialises its histories as arrays.
func (s *Snapshot) Normalize() {
	if s.WorkoutSessions == nil {
		s.WorkoutSessions = []WorkoutSession{}
	}
	if s.MoodEntries == nil {
		s.MoodEntries = []MoodEntry{}
	}
}
