package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	h, m, err := ParseClock("07:45")
	require.NoError(t, err)
	assert.Equal(t, 7, h)
	assert.Equal(t, 45, m)

	for _, bad := range []string{"7pm", "24:00", "", "12:60"} {
		_, _, err := ParseClock(bad)
		assert.Error(t, err, bad)
	}
}

func TestSessionUpdate_Apply(t *testing.T) {
	rating := 4
	orig := WorkoutSession{ID: "s1", WorkoutID: "1", Date: time.Unix(0, 0).UTC(), Duration: 5}
	notes := "good"

	got := SessionUpdate{Rating: &rating, Notes: &notes}.Apply(orig)
	assert.Equal(t, "s1", got.ID)
	assert.Equal(t, 5, got.Duration)
	assert.Equal(t, 4, *got.Rating)
	assert.Equal(t, "good", got.Notes)

	rating = 1
	assert.Equal(t, 4, *got.Rating, "update must not alias the caller's pointer")
	assert.True(t, SessionUpdate{}.IsEmpty())
}

func TestUserClone(t *testing.T) {
	var nilUser *User
	assert.Nil(t, nilUser.Clone())

	u := &User{Name: "Dana", Goals: []string{"Better sleep"}}
	c := u.Clone()
	c.Goals[0] = "changed"
	assert.Equal(t, "Better sleep", u.Goals[0])
}

func TestTabValid(t *testing.T) {
	assert.True(t, TabProfile.Valid())
	assert.False(t, Tab("settings").Valid())
	assert.Equal(t, TabDashboard, DefaultTab)
}

func TestBuiltinWorkouts(t *testing.T) {
	seen := map[string]bool{}
	for _, w := range BuiltinWorkouts() {
		assert.False(t, seen[w.ID], "duplicate id %s", w.ID)
		seen[w.ID] = true
		assert.NotEmpty(t, w.Instructions)
	}
	assert.Len(t, seen, 3)
}
