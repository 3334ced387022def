package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartQuick(t *testing.T) {
	st := newTestStore(t)
	svc := NewWorkoutService(st)

	session, err := svc.StartQuick("2")
	require.NoError(t, err)
	assert.Equal(t, "2", session.WorkoutID)
	assert.Equal(t, 15, session.Duration)
	assert.False(t, session.Completed)
	assert.Equal(t, fixedNow, session.Date)
	assert.Len(t, st.WorkoutSessions(), 1)

	_, err = svc.StartQuick("404")
	assert.ErrorIs(t, err, ErrWorkoutNotFound)
}

func TestFinish(t *testing.T) {
	tests := []struct {
		name      string
		elapsed   time.Duration
		completed bool
		saved     bool
		minutes   int
		rating    *int
	}{
		{name: "completed", elapsed: 5*time.Minute + 40*time.Second, completed: true, saved: true, minutes: 5},
		{name: "completed quickly", elapsed: 20 * time.Second, completed: true, saved: true, minutes: 0},
		{name: "abandoned early", elapsed: 60 * time.Second, completed: false, saved: false},
		{name: "abandoned late", elapsed: 3 * time.Minute, completed: false, saved: true, minutes: 3, rating: intPtr(3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newTestStore(t)
			svc := NewWorkoutService(st)

			session, err := svc.Finish("1", tt.elapsed, tt.completed)
			require.NoError(t, err)
			if !tt.saved {
				assert.Nil(t, session)
				assert.Empty(t, st.WorkoutSessions())
				return
			}
			require.NotNil(t, session)
			assert.Equal(t, tt.minutes, session.Duration)
			assert.Equal(t, tt.completed, session.Completed)
			assert.Equal(t, tt.rating, session.Rating)
			assert.Equal(t, []string{session.ID}, sessionIDs(st.WorkoutSessions()))
		})
	}
}

func TestRate(t *testing.T) {
	st := newTestStore(t)
	svc := NewWorkoutService(st)
	session, err := svc.StartQuick("3")
	require.NoError(t, err)

	require.NoError(t, svc.Rate(session.ID, 4, "felt strong"))
	got := st.WorkoutSessions()[0]
	require.NotNil(t, got.Rating)
	assert.Equal(t, 4, *got.Rating)
	assert.Equal(t, "felt strong", got.Notes)

	assert.ErrorIs(t, svc.Rate(session.ID, 6, ""), ErrValidationFailed)
	assert.ErrorIs(t, svc.Rate("missing", 3, ""), ErrSessionNotFound)

	require.NoError(t, svc.Complete(session.ID))
	assert.True(t, st.WorkoutSessions()[0].Completed)
	assert.Equal(t, 4, *st.WorkoutSessions()[0].Rating)
}

func intPtr(v int) *int { return &v }
