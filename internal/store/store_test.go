package store_test

import (
	"alcyxob/wellness-app/internal/domain"
	"alcyxob/wellness-app/internal/store"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, opts ...store.Option) *store.Store {
	t.Helper()
	opts = append([]store.Option{store.WithClock(clock)}, opts...)
	return store.Open(context.Background(), opts...)
}

func TestOpen_Defaults(t *testing.T) {
	s := newStore(t)

	assert.Nil(t, s.User())
	assert.False(t, s.IsOnboarded())
	assert.Empty(t, s.WorkoutSessions())
	assert.Empty(t, s.MoodEntries())
	assert.Equal(t, "dashboard", s.ActiveTab())
	assert.Equal(t, domain.BuiltinWorkouts(), s.Workouts())
}

func TestCompleteOnboarding_IsMonotonic(t *testing.T) {
	s := newStore(t)
	s.CompleteOnboarding()
	s.CompleteOnboarding()
	assert.True(t, s.IsOnboarded())

	s.SetUser(domain.User{ID: "u1", Name: "Ann"})
	s.SetActiveTab("profile")
	s.AddWorkoutSession(session("a", daysAgo(0), 10, true))
	s.AddMoodEntry(mood("m", daysAgo(0), 4, 4))
	s.UpdateWorkoutSession("a", domain.SessionUpdate{Completed: boolPtr(false)})
	assert.True(t, s.IsOnboarded())
}

func TestOnboardingAndUserAreIndependent(t *testing.T) {
	s := newStore(t)
	s.CompleteOnboarding()
	assert.True(t, s.IsOnboarded())
	assert.Nil(t, s.User(), "the flag does not imply a user")

	other := newStore(t)
	other.SetUser(domain.User{ID: "u1"})
	assert.False(t, other.IsOnboarded(), "a user does not imply the flag")
}

func TestSetUser_ReplacesWholesale(t *testing.T) {
	s := newStore(t)
	s.SetUser(domain.User{ID: "u1", Name: "Ann", Goals: []string{"posture"}, Age: 30})
	s.SetUser(domain.User{ID: "u1", Name: "Ann B"})

	u := s.User()
	require.NotNil(t, u)
	assert.Equal(t, "Ann B", u.Name)
	assert.Nil(t, u.Goals)
	assert.Zero(t, u.Age)
}

func TestAccessorsReturnCopies(t *testing.T) {
	s := newStore(t)
	s.SetUser(domain.User{ID: "u1", Goals: []string{"a"}})
	s.AddWorkoutSession(domain.WorkoutSession{ID: "x", Rating: intPtr(3)})

	u := s.User()
	u.Goals[0] = "mutated"
	sessions := s.WorkoutSessions()
	*sessions[0].Rating = 1
	workouts := s.Workouts()
	workouts[0].Name = "mutated"

	assert.Equal(t, "a", s.User().Goals[0])
	assert.Equal(t, 3, *s.WorkoutSessions()[0].Rating)
	assert.NotEqual(t, "mutated", s.Workouts()[0].Name)
}

func TestSetActiveTab_AcceptsAnyString(t *testing.T) {
	s := newStore(t)
	s.SetActiveTab("not-a-screen")
	assert.Equal(t, "not-a-screen", s.ActiveTab())
}

func TestAppendOnlyCollections(t *testing.T) {
	s := newStore(t)
	for i, id := range []string{"a", "b", "c", "a"} {
		s.AddWorkoutSession(session(id, daysAgo(i), i*10, i%2 == 0))
		s.AddMoodEntry(mood(id, daysAgo(i), 3, 3))
	}

	sessions := s.WorkoutSessions()
	require.Len(t, sessions, 4, "duplicate ids are not rejected")
	assert.Equal(t, []string{"a", "b", "c", "a"}, []string{sessions[0].ID, sessions[1].ID, sessions[2].ID, sessions[3].ID})
	assert.Equal(t, 20, sessions[2].Duration)

	moods := s.MoodEntries()
	require.Len(t, moods, 4)
	assert.Equal(t, "c", moods[2].ID)
}

func TestMoodEntries_NotDeduplicatedByDay(t *testing.T) {
	s := newStore(t)
	s.AddMoodEntry(mood("m1", daysAgo(0), 2, 2))
	s.AddMoodEntry(mood("m2", daysAgo(0).Add(-30*time.Minute), 4, 4))
	assert.Len(t, s.MoodEntries(), 2)
}

func TestUpdateWorkoutSession_MergesSuppliedFields(t *testing.T) {
	s := newStore(t)
	orig := session("x", daysAgo(1), 10, false)
	orig.Notes = "felt ok"
	s.AddWorkoutSession(orig)

	s.UpdateWorkoutSession("x", domain.SessionUpdate{Completed: boolPtr(true)})

	got := s.WorkoutSessions()[0]
	assert.True(t, got.Completed)
	assert.Equal(t, 10, got.Duration)
	assert.Equal(t, "felt ok", got.Notes)
	assert.Equal(t, orig.Date, got.Date)
	assert.Nil(t, got.Rating)

	s.UpdateWorkoutSession("x", domain.SessionUpdate{Rating: intPtr(5), Notes: strPtr("great")})
	got = s.WorkoutSessions()[0]
	assert.Equal(t, 5, *got.Rating)
	assert.Equal(t, "great", got.Notes)
	assert.True(t, got.Completed)
}

func TestUpdateWorkoutSession_UnknownIDIsNoOp(t *testing.T) {
	repo := newMemRepo()
	s := newStore(t, store.WithRepository(repo))
	s.AddWorkoutSession(session("x", daysAgo(1), 10, false))

	before, err := store.EncodeSnapshot(s.Snapshot())
	require.NoError(t, err)
	saves := repo.saveCount()

	s.UpdateWorkoutSession("missing", domain.SessionUpdate{Completed: boolPtr(true)})

	after, err := store.EncodeSnapshot(s.Snapshot())
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, saves, repo.saveCount(), "nothing changed, nothing written")
}

func TestWorkoutByID(t *testing.T) {
	s := newStore(t)

	w, ok := s.WorkoutByID("3")
	require.True(t, ok)
	assert.Equal(t, domain.TypeStrength, w.Type)

	_, ok = s.WorkoutByID("nope")
	assert.False(t, ok)
}

func TestSubscribe(t *testing.T) {
	s := newStore(t)

	var calls []string
	unsubscribe := s.Subscribe(func(next, prev store.State) {
		calls = append(calls, prev.ActiveTab+"->"+next.ActiveTab)
		// Listeners may read the store without deadlocking.
		assert.Equal(t, next.ActiveTab, s.ActiveTab())
	})

	s.SetActiveTab("stats")
	s.SetActiveTab("calendar")
	unsubscribe()
	unsubscribe()
	s.SetActiveTab("profile")

	assert.Equal(t, []string{"dashboard->stats", "stats->calendar"}, calls)
}

func TestSubscribe_PrevStateIsUntouched(t *testing.T) {
	s := newStore(t)
	s.AddWorkoutSession(session("a", daysAgo(0), 10, false))

	var prevLen, nextLen int
	var prevCompleted bool
	s.Subscribe(func(next, prev store.State) {
		prevLen, nextLen = len(prev.WorkoutSessions), len(next.WorkoutSessions)
		prevCompleted = prev.WorkoutSessions[0].Completed
	})

	s.UpdateWorkoutSession("a", domain.SessionUpdate{Completed: boolPtr(true)})
	assert.Equal(t, 1, prevLen)
	assert.Equal(t, 1, nextLen)
	assert.False(t, prevCompleted)

	s.AddWorkoutSession(session("b", daysAgo(0), 10, false))
	assert.Equal(t, 1, prevLen)
	assert.Equal(t, 2, nextLen)
}

func TestReset(t *testing.T) {
	repo := newMemRepo()
	s := newStore(t, store.WithRepository(repo))
	s.SetUser(domain.User{ID: "u1"})
	s.CompleteOnboarding()
	s.AddWorkoutSession(session("a", daysAgo(0), 10, true))
	s.SetActiveTab("stats")

	s.Reset()

	assert.Nil(t, s.User())
	assert.False(t, s.IsOnboarded())
	assert.Empty(t, s.WorkoutSessions())
	assert.Equal(t, "dashboard", s.ActiveTab())

	_, err := repo.Load(context.Background(), store.DefaultKey)
	assert.Error(t, err, "snapshot removed")
}
