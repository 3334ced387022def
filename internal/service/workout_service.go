package service

import (
	"alcyxob/wellness-app/internal/domain"
	"alcyxob/wellness-app/internal/store"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrWorkoutNotFound = errors.New("workout not found")
	ErrSessionNotFound = errors.New("workout session not found")
)

// MinSavedElapsed is how long an abandoned workout must run to be recorded.
const MinSavedElapsed = time.Minute

// DefaultAbandonedRating is attached to sessions stopped before completion.
const DefaultAbandonedRating = 3

// WorkoutService records workout sessions against the catalog.
type WorkoutService interface {
	List() []domain.Workout
	Get(workoutID string) (domain.Workout, error)
	StartQuick(workoutID string) (domain.WorkoutSession, error)
	Finish(workoutID string, elapsed time.Duration, completed bool) (*domain.WorkoutSession, error)
	Complete(sessionID string) error
	Rate(sessionID string, rating int, notes string) error
}

type workoutService struct {
	store *store.Store
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(s *store.Store) WorkoutService {
	return &workoutService{store: s}
}

// List returns the catalog.
func (s *workoutService) List() []domain.Workout {
	return s.store.Workouts()
}

// Get returns a catalog workout.
func (s *workoutService) Get(workoutID string) (domain.Workout, error) {
	w, ok := s.store.WorkoutByID(workoutID)
	if !ok {
		return domain.Workout{}, ErrWorkoutNotFound
	}
	return w, nil
}

// StartQuick records an incomplete session with the workout's nominal duration.
func (s *workoutService) StartQuick(workoutID string) (domain.WorkoutSession, error) {
	w, err := s.Get(workoutID)
	if err != nil {
		return domain.WorkoutSession{}, err
	}
	session := domain.WorkoutSession{
		ID:        uuid.NewString(),
		WorkoutID: w.ID,
		Date:      s.store.Now(),
		Duration:  w.Duration,
		Completed: false,
	}
	s.store.AddWorkoutSession(session)
	return session, nil
}

// Finish records a timed workout. Abandoned workouts shorter than
// MinSavedElapsed are dropped and nil is returned.
func (s *workoutService) Finish(workoutID string, elapsed time.Duration, completed bool) (*domain.WorkoutSession, error) {
	w, err := s.Get(workoutID)
	if err != nil {
		return nil, err
	}
	if !completed && elapsed <= MinSavedElapsed {
		return nil, nil
	}

	session := domain.WorkoutSession{
		ID:        uuid.NewString(),
		WorkoutID: w.ID,
		Date:      s.store.Now(),
		Duration:  int(elapsed / time.Minute),
		Completed: completed,
	}
	if !completed {
		rating := DefaultAbandonedRating
		session.Rating = &rating
	}
	s.store.AddWorkoutSession(session)
	return &session, nil
}

// Complete marks a previously started session as completed.
func (s *workoutService) Complete(sessionID string) error {
	if !s.hasSession(sessionID) {
		return ErrSessionNotFound
	}
	completed := true
	s.store.UpdateWorkoutSession(sessionID, domain.SessionUpdate{Completed: &completed})
	return nil
}

// Rate attaches a 1-5 rating and optional notes to a session.
func (s *workoutService) Rate(sessionID string, rating int, notes string) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("%w: rating %d not in 1-5", ErrValidationFailed, rating)
	}
	if !s.hasSession(sessionID) {
		return ErrSessionNotFound
	}
	update := domain.SessionUpdate{Rating: &rating}
	if notes != "" {
		update.Notes = &notes
	}
	s.store.UpdateWorkoutSession(sessionID, update)
	return nil
}

// The store ignores unknown ids, so the service checks first to report them.
func (s *workoutService) hasSession(id string) bool {
	for _, session := range s.store.WorkoutSessions() {
		if session.ID == id {
			return true
		}
	}
	return false
}
