package store

import (
	"alcyxob/wellness-app/internal/domain"
	"alcyxob/wellness-app/internal/repository"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Snapshot returns the persisted subset of the current state.
func (s *Store) Snapshot() domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshotOf(s.state)
}

func snapshotOf(st State) domain.Snapshot {
	snap := domain.Snapshot{
		User:            st.User.Clone(),
		IsOnboarded:     st.IsOnboarded,
		WorkoutSessions: cloneSessions(st.WorkoutSessions),
		MoodEntries:     cloneMoods(st.MoodEntries),
	}
	snap.Normalize()
	return snap
}

func applySnapshot(st *State, snap domain.Snapshot) {
	snap.Normalize()
	st.User = snap.User.Clone()
	st.IsOnboarded = snap.IsOnboarded
	st.WorkoutSessions = cloneSessions(snap.WorkoutSessions)
	st.MoodEntries = cloneMoods(snap.MoodEntries)
}

// EncodeSnapshot renders the persisted document.
func EncodeSnapshot(snap domain.Snapshot) ([]byte, error) {
	snap.Normalize()
	return json.Marshal(snap)
}

// DecodeSnapshot parses a persisted document. Absent fields keep their
// defaults.
func DecodeSnapshot(data []byte) (domain.Snapshot, error) {
	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return domain.Snapshot{}, fmt.Errorf("%w: %v", repository.ErrCorruptData, err)
	}
	snap.Normalize()
	return snap, nil
}

// persistLocked writes the current snapshot. Failures are logged, never
// returned: actions cannot fail. Callers hold s.mu.
func (s *Store) persistLocked(action string) {
	if s.repo == nil {
		return
	}
	data, err := EncodeSnapshot(snapshotOf(s.state))
	if err != nil {
		s.logger.Error("Failed to encode snapshot", zap.String("action", action), zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.persistTimeout)
	defer cancel()
	if err := s.repo.Save(ctx, s.key, data); err != nil {
		s.logger.Error("Failed to persist snapshot",
			zap.String("action", action),
			zap.String("key", s.key),
			zap.Error(err))
		return
	}
	s.logger.Debug("Snapshot persisted", zap.String("action", action), zap.Int("bytes", len(data)))
}

// rehydrate restores the persisted fields before the store is handed out.
func (s *Store) rehydrate(ctx context.Context) {
	if s.repo == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, s.persistTimeout)
	defer cancel()

	data, err := s.repo.Load(ctx, s.key)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Debug("No snapshot found, starting fresh", zap.String("key", s.key))
		} else {
			s.logger.Warn("Failed to load snapshot, starting fresh", zap.String("key", s.key), zap.Error(err))
		}
		return
	}

	snap, err := DecodeSnapshot(data)
	if err != nil {
		s.logger.Warn("Ignoring corrupt snapshot", zap.String("key", s.key), zap.Error(err))
		return
	}

	s.mu.Lock()
	applySnapshot(&s.state, snap)
	s.mu.Unlock()

	s.logger.Info("Snapshot restored",
		zap.String("key", s.key),
		zap.Bool("onboarded", snap.IsOnboarded),
		zap.Int("sessions", len(snap.WorkoutSessions)),
		zap.Int("moodEntries", len(snap.MoodEntries)))
}
