package domain

import "time"

// WorkoutSession records one performance of a catalog workout.
// WorkoutID is a lookup key into the catalog, not an owning reference:
// the session stays valid even if no workout with that id exists.
type WorkoutSession struct {
	ID        string    `json:"id" yaml:"id"`
	WorkoutID string    `json:"workoutId" yaml:"workoutId"`
	Date      time.Time `json:"date" yaml:"date"`
	Duration  int       `json:"duration" yaml:"duration"` // Actual length, minutes
	Completed bool      `json:"completed" yaml:"completed"`
	Rating    *int      `json:"rating,omitempty" yaml:"rating,omitempty"` // Optional, nil when unrated
	Notes     string    `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Clone returns a deep copy of the session.
func (s WorkoutSession) Clone() WorkoutSession {
	if s.Rating != nil {
		r := *s.Rating
		s.Rating = &r
	}
	return s
}

// SessionUpdate is a partial update for a WorkoutSession.
// Only non-nil fields are applied; everything else is preserved.
type SessionUpdate struct {
	WorkoutID *string
	Date      *time.Time
	Duration  *int
	Completed *bool
	Rating    *int
	Notes     *string
}

// Apply returns s with the supplied fields of u merged in.
// The session id is never changed by an update.
func (u SessionUpdate) Apply(s WorkoutSession) WorkoutSession {
	if u.WorkoutID != nil {
		s.WorkoutID = *u.WorkoutID
	}
	if u.Date != nil {
		s.Date = *u.Date
	}
	if u.Duration != nil {
		s.Duration = *u.Duration
	}
	if u.Completed != nil {
		s.Completed = *u.Completed
	}
	if u.Rating != nil {
		r := *u.Rating
		s.Rating = &r
	}
	if u.Notes != nil {
		s.Notes = *u.Notes
	}
	return s
}

// IsEmpty reports whether the update carries no fields.
func (u SessionUpdate) IsEmpty() bool {
	return u.WorkoutID == nil && u.Date == nil && u.Duration == nil &&
		u.Completed == nil && u.Rating == nil && u.Notes == nil
}
