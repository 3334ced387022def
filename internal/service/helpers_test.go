package service

import (
	"alcyxob/wellness-app/internal/domain"
	"alcyxob/wellness-app/internal/store"
	"context"
	"testing"
	"time"
)

// Tuesday, 10 December 2024.
var fixedNow = time.Date(2024, time.December, 10, 15, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.Open(context.Background(), store.WithClock(func() time.Time { return fixedNow }))
}

func daysAgo(n int) time.Time {
	return fixedNow.AddDate(0, 0, -n)
}

func sessionIDs(sessions []domain.WorkoutSession) []string {
	ids := make([]string, len(sessions))
	for i, s := range sessions {
		ids[i] = s.ID
	}
	return ids
}
