package reminder

import (
	"alcyxob/wellness-app/internal/domain"
	"alcyxob/wellness-app/internal/store"
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var fixedNow = time.Date(2024, time.December, 10, 15, 0, 0, 0, time.UTC)

type recordingNotifier struct {
	mu   sync.Mutex
	sent []Reminder
}

func (n *recordingNotifier) Notify(_ context.Context, r Reminder) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, r)
	return nil
}

func newStore() *store.Store {
	return store.Open(context.Background(), store.WithClock(func() time.Time { return fixedNow }))
}

func user(reminderAt string) domain.User {
	return domain.User{
		Name:         "Dana",
		FitnessLevel: domain.FitnessBeginner,
		Preferences:  domain.Preferences{WorkoutTime: "08:00", Duration: 20, ReminderTime: reminderAt},
	}
}

func TestScheduler_FollowsReminderTime(t *testing.T) {
	st := newStore()
	s, err := New(st, &recordingNotifier{}, WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)
	require.NoError(t, s.Start())
	defer func() { assert.NoError(t, s.Shutdown()) }()

	_, ok := s.NextReminder()
	assert.False(t, ok, "no user, no reminder")

	st.SetUser(user("18:30"))
	next, ok := s.NextReminder()
	require.True(t, ok)
	assert.Equal(t, 18, next.In(time.UTC).Hour())
	assert.Equal(t, 30, next.In(time.UTC).Minute())

	st.SetUser(user("07:05"))
	next, ok = s.NextReminder()
	require.True(t, ok)
	assert.Equal(t, 7, next.In(time.UTC).Hour())
	assert.Equal(t, 5, next.In(time.UTC).Minute())
	assert.Len(t, s.cron.Jobs(), 1)

	st.Reset()
	_, ok = s.NextReminder()
	assert.False(t, ok)
	assert.Empty(t, s.cron.Jobs())
}

func TestScheduler_ShutdownStopsFollowing(t *testing.T) {
	st := newStore()
	s, err := New(st, &recordingNotifier{})
	require.NoError(t, err)
	require.NoError(t, s.Start())
	require.NoError(t, s.Shutdown())

	st.SetUser(user("09:00"))
	_, ok := s.NextReminder()
	assert.False(t, ok)
}

func TestRemindNow(t *testing.T) {
	st := newStore()
	n := &recordingNotifier{}
	s, err := New(st, n)
	require.NoError(t, err)
	defer func() { assert.NoError(t, s.Shutdown()) }()

	assert.Error(t, s.RemindNow(context.Background()))

	st.SetUser(user("08:00"))
	st.AddWorkoutSession(domain.WorkoutSession{ID: "a", WorkoutID: "1", Date: fixedNow, Duration: 5, Completed: true})
	require.NoError(t, s.RemindNow(context.Background()))

	st.AddMoodEntry(domain.MoodEntry{ID: "m", Date: fixedNow, Mood: 3, Energy: 3, Stress: 3, Sleep: 7})
	require.NoError(t, s.RemindNow(context.Background()))

	require.Len(t, n.sent, 2)
	assert.Equal(t, Reminder{UserName: "Dana", At: fixedNow, StreakDays: 1}, n.sent[0])
	assert.True(t, n.sent[1].MoodLogged)
	assert.Equal(t, "Time to move, Dana! Keep your 1 day streak going. Don't forget today's check-in.", n.sent[0].Message())
}

func TestScheduler_Backup(t *testing.T) {
	st := newStore()
	var runs atomic.Int32
	s, err := New(st, nil, WithBackup(20*time.Millisecond, func(ctx context.Context) error {
		runs.Add(1)
		return errors.New("bucket unavailable")
	}))
	require.NoError(t, err)
	require.NoError(t, s.Start())

	assert.Eventually(t, func() bool { return runs.Load() >= 2 }, 2*time.Second, 10*time.Millisecond)
	require.NoError(t, s.Shutdown())
}
