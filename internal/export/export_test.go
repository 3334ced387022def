package export

import (
	"alcyxob/wellness-app/internal/domain"
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot() domain.Snapshot {
	at := time.Date(2024, time.December, 9, 7, 30, 0, 0, time.UTC)
	rating := 4
	return domain.Snapshot{
		User: &domain.User{
			ID:           "u1",
			Name:         "Ann",
			FitnessLevel: domain.FitnessBeginner,
			Goals:        []string{"posture"},
			Preferences:  domain.Preferences{WorkoutTime: "08:00", Duration: 20, ReminderTime: "08:00"},
		},
		IsOnboarded: true,
		WorkoutSessions: []domain.WorkoutSession{
			{ID: "s1", WorkoutID: "2", Date: at, Duration: 15, Completed: true, Rating: &rating},
		},
		MoodEntries: []domain.MoodEntry{
			{ID: "m1", Date: at, Mood: 3.5, Energy: 4, Stress: 2, Sleep: 7.5, Notes: "ok"},
		},
	}
}

func TestWriteRead_RoundTrip(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, sampleSnapshot(), format))

			got, err := Read(&buf, format)
			require.NoError(t, err)
			if diff := cmp.Diff(sampleSnapshot(), got, cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWrite_YAMLUsesCamelCaseKeys(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleSnapshot(), FormatYAML))
	out := buf.String()
	assert.Contains(t, out, "isOnboarded: true")
	assert.Contains(t, out, "workoutSessions:")
	assert.Contains(t, out, "reminderTime:")
}

func TestRead_EmptyDocumentYieldsDefaults(t *testing.T) {
	snap, err := Read(strings.NewReader(""), FormatYAML)
	require.NoError(t, err)
	assert.Nil(t, snap.User)
	assert.False(t, snap.IsOnboarded)
	assert.NotNil(t, snap.WorkoutSessions)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}
