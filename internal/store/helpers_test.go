package store_test

import (
	"alcyxob/wellness-app/internal/domain"
	"alcyxob/wellness-app/internal/repository"
	"context"
	"sync"
	"time"
)

// fixedNow is a Tuesday afternoon; tests derive all dates from it.
var fixedNow = time.Date(2024, time.December, 10, 15, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func daysAgo(n int) time.Time { return fixedNow.AddDate(0, 0, -n) }

func session(id string, date time.Time, duration int, completed bool) domain.WorkoutSession {
	return domain.WorkoutSession{
		ID:        id,
		WorkoutID: "1",
		Date:      date,
		Duration:  duration,
		Completed: completed,
	}
}

func mood(id string, date time.Time, m, e float64) domain.MoodEntry {
	return domain.MoodEntry{ID: id, Date: date, Mood: m, Energy: e, Stress: 2, Sleep: 7}
}

func intPtr(v int) *int       { return &v }
func boolPtr(v bool) *bool    { return &v }
func strPtr(v string) *string { return &v }

// memRepo is an in-memory SnapshotRepository with injectable failures.
type memRepo struct {
	mu      sync.Mutex
	data    map[string][]byte
	saves   int
	saveErr error
	loadErr error
}

func newMemRepo() *memRepo {
	return &memRepo{data: map[string][]byte{}}
}

func (r *memRepo) Load(ctx context.Context, key string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	b, ok := r.data[key]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return append([]byte(nil), b...), nil
}

func (r *memRepo) Save(ctx context.Context, key string, data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++
	if r.saveErr != nil {
		return r.saveErr
	}
	r.data[key] = append([]byte(nil), data...)
	return nil
}

func (r *memRepo) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, key)
	return nil
}

func (r *memRepo) Close(ctx context.Context) error { return nil }

func (r *memRepo) saveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves
}
