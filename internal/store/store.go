// Package store holds the health state: user profile, workout catalog,
// session and mood history, and the active screen. All mutations go through
// the Store's action methods, which persist the durable subset of the state
// and notify subscribers.
package store

import (
	"alcyxob/wellness-app/internal/domain"
	"alcyxob/wellness-app/internal/repository"
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultKey is the storage key snapshots are written under.
const DefaultKey = "health-storage"

const defaultPersistTimeout = 5 * time.Second

// State is a point-in-time copy of everything the store holds.
type State struct {
	User            *domain.User
	IsOnboarded     bool
	Workouts        []domain.Workout
	WorkoutSessions []domain.WorkoutSession
	MoodEntries     []domain.MoodEntry
	ActiveTab       string
}

func (s State) clone() State {
	c := State{
		User:        s.User.Clone(),
		IsOnboarded: s.IsOnboarded,
		ActiveTab:   s.ActiveTab,
	}
	c.Workouts = make([]domain.Workout, len(s.Workouts))
	for i, w := range s.Workouts {
		c.Workouts[i] = w.Clone()
	}
	c.WorkoutSessions = cloneSessions(s.WorkoutSessions)
	c.MoodEntries = cloneMoods(s.MoodEntries)
	return c
}

func defaultState() State {
	return State{
		Workouts:        domain.BuiltinWorkouts(),
		WorkoutSessions: []domain.WorkoutSession{},
		MoodEntries:     []domain.MoodEntry{},
		ActiveTab:       string(domain.DefaultTab),
	}
}

// Listener is called after every state change with the new and previous state.
type Listener func(next, prev State)

type subscription struct {
	id int
	fn Listener
}

// Store is the single source of truth for one user's health data.
// It is safe for concurrent use; actions are applied one at a time.
type Store struct {
	mu    sync.RWMutex
	state State

	repo           repository.SnapshotRepository
	key            string
	logger         *zap.Logger
	now            func() time.Time
	persistTimeout time.Duration

	subMu  sync.Mutex
	subs   []subscription
	nextID int
}

// Option configures a Store.
type Option func(*Store)

// WithRepository sets the durable storage for snapshots. Without one the
// store is memory-only.
func WithRepository(repo repository.SnapshotRepository) Option {
	return func(s *Store) { s.repo = repo }
}

// WithKey overrides the storage key.
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// WithLogger sets the logger used for persistence diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock replaces time.Now for the derived statistics.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithPersistTimeout bounds each snapshot write.
func WithPersistTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.persistTimeout = d
		}
	}
}

// Open creates a store and restores the last snapshot from the repository,
// if any. A missing or unreadable snapshot leaves the defaults in place.
func Open(ctx context.Context, opts ...Option) *Store {
	s := &Store{
		state:          defaultState(),
		key:            DefaultKey,
		logger:         zap.NewNop(),
		now:            time.Now,
		persistTimeout: defaultPersistTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.rehydrate(ctx)
	return s
}

// Key returns the storage key of the store.
func (s *Store) Key() string {
	return s.key
}

// --- Actions ---

// SetUser replaces the current user wholesale. No validation is performed.
func (s *Store) SetUser(u domain.User) {
	s.update("setUser", func(st *State) bool {
		st.User = u.Clone()
		return true
	})
}

// CompleteOnboarding marks onboarding as done. It is idempotent.
func (s *Store) CompleteOnboarding() {
	s.update("completeOnboarding", func(st *State) bool {
		st.IsOnboarded = true
		return true
	})
}

// SetActiveTab replaces the active screen identifier. Any string is accepted.
func (s *Store) SetActiveTab(tab string) {
	s.update("setActiveTab", func(st *State) bool {
		st.ActiveTab = tab
		return true
	})
}

// AddWorkoutSession appends a session. Id uniqueness is the caller's concern.
func (s *Store) AddWorkoutSession(session domain.WorkoutSession) {
	s.update("addWorkoutSession", func(st *State) bool {
		st.WorkoutSessions = append(st.WorkoutSessions, session.Clone())
		return true
	})
}

// AddMoodEntry appends a mood entry. Entries are never merged by day.
func (s *Store) AddMoodEntry(entry domain.MoodEntry) {
	s.update("addMoodEntry", func(st *State) bool {
		st.MoodEntries = append(st.MoodEntries, entry)
		return true
	})
}

// UpdateWorkoutSession merges the supplied fields into every session with the
// given id. Unknown ids are silently ignored.
func (s *Store) UpdateWorkoutSession(id string, updates domain.SessionUpdate) {
	s.update("updateWorkoutSession", func(st *State) bool {
		matched := false
		for i := range st.WorkoutSessions {
			if st.WorkoutSessions[i].ID == id {
				st.WorkoutSessions[i] = updates.Apply(st.WorkoutSessions[i])
				matched = true
			}
		}
		return matched
	})
}

// Reset returns the store to its initial state, including the onboarding
// flag, and removes the stored snapshot.
func (s *Store) Reset() {
	s.mu.Lock()
	prev := s.state
	next := defaultState()
	s.state = next
	if s.repo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), s.persistTimeout)
		if err := s.repo.Delete(ctx, s.key); err != nil {
			s.logger.Error("Failed to delete snapshot", zap.String("key", s.key), zap.Error(err))
		}
		cancel()
	}
	s.mu.Unlock()

	s.logger.Info("Store reset", zap.String("key", s.key))
	s.notify(next, prev)
}

// Restore replaces the persisted fields with snap, as when importing a backup.
func (s *Store) Restore(snap domain.Snapshot) {
	s.update("restore", func(st *State) bool {
		applySnapshot(st, snap)
		return true
	})
}

// update applies fn under the write lock, persists and notifies when fn
// reports a change.
func (s *Store) update(action string, fn func(st *State) bool) {
	s.mu.Lock()
	prev := s.state
	next := s.state
	// Collections are copied before fn runs so prev stays untouched.
	next.WorkoutSessions = cloneSessions(prev.WorkoutSessions)
	next.MoodEntries = cloneMoods(prev.MoodEntries)
	if !fn(&next) {
		s.mu.Unlock()
		s.logger.Debug("Action changed nothing", zap.String("action", action))
		return
	}
	s.state = next
	s.persistLocked(action)
	s.mu.Unlock()

	s.notify(next, prev)
}

// --- Read accessors ---

// State returns a deep copy of the whole state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// User returns a copy of the current user, or nil before onboarding.
func (s *Store) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.User.Clone()
}

// IsOnboarded reports whether onboarding has ever been completed.
func (s *Store) IsOnboarded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsOnboarded
}

// ActiveTab returns the current screen identifier.
func (s *Store) ActiveTab() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.ActiveTab
}

// Workouts returns a copy of the catalog.
func (s *Store) Workouts() []domain.Workout {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Workout, len(s.state.Workouts))
	for i, w := range s.state.Workouts {
		out[i] = w.Clone()
	}
	return out
}

// WorkoutByID looks a workout up in the catalog.
func (s *Store) WorkoutByID(id string) (domain.Workout, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, w := range s.state.Workouts {
		if w.ID == id {
			return w.Clone(), true
		}
	}
	return domain.Workout{}, false
}

// WorkoutSessions returns a copy of the session history in insertion order.
func (s *Store) WorkoutSessions() []domain.WorkoutSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSessions(s.state.WorkoutSessions)
}

// MoodEntries returns a copy of the mood history in insertion order.
func (s *Store) MoodEntries() []domain.MoodEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneMoods(s.state.MoodEntries)
}

// --- Subscriptions ---

// Subscribe registers fn to run after every state change. Listeners run
// outside the store lock, in registration order, and may read the store.
// The returned function removes the listener.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	s.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			defer s.subMu.Unlock()
			for i, sub := range s.subs {
				if sub.id == id {
					s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
					return
				}
			}
		})
	}
}

func (s *Store) notify(next, prev State) {
	s.subMu.Lock()
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	s.subMu.Unlock()

	for _, sub := range subs {
		sub.fn(next.clone(), prev.clone())
	}
}

func cloneSessions(in []domain.WorkoutSession) []domain.WorkoutSession {
	out := make([]domain.WorkoutSession, len(in))
	for i, s := range in {
		out[i] = s.Clone()
	}
	return out
}

func cloneMoods(in []domain.MoodEntry) []domain.MoodEntry {
	out := make([]domain.MoodEntry, len(in))
	copy(out, in)
	return out
}
