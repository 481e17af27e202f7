package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checkinmonitor/internal/checkin"
	"checkinmonitor/internal/locale"
	"checkinmonitor/internal/models"
	"checkinmonitor/internal/theme"
)

var start = time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

func at(minutes int, status checkin.Status) models.CheckIn {
	return models.CheckIn{
		Monitor:   "daily-sync",
		Status:    status,
		Timestamp: start.Add(time.Duration(minutes) * time.Minute),
	}
}

func TestDominant(t *testing.T) {
	tests := []struct {
		name    string
		entries []models.CheckIn
		want    checkin.Status
	}{
		{"single", []models.CheckIn{at(0, checkin.StatusOK)}, checkin.StatusOK},
		{"error beats everything", []models.CheckIn{at(0, checkin.StatusOK), at(1, checkin.StatusError), at(2, checkin.StatusTimeout)}, checkin.StatusError},
		{"missed beats unknown", []models.CheckIn{at(0, checkin.StatusUnknown), at(1, checkin.StatusMissed)}, checkin.StatusMissed},
		{"ok beats in progress", []models.CheckIn{at(0, checkin.StatusInProgress), at(1, checkin.StatusOK)}, checkin.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Dominant(tt.entries))
		})
	}
}

func TestBuildMonitorTimeline(t *testing.T) {
	entries := []models.CheckIn{
		at(50, checkin.StatusTimeout),
		at(5, checkin.StatusOK),
		at(15, checkin.StatusOK),
		at(18, checkin.StatusError),
		at(-5, checkin.StatusError),
	}
	tl := BuildMonitorTimeline("daily-sync", entries, start, start.Add(time.Hour), Options{
		Points: 6,
		Lookup: theme.Light(),
	})

	assert.Equal(t, "daily-sync", tl.Monitor)
	require.Len(t, tl.Ticks, 6)

	first := tl.Ticks[0]
	require.NotNil(t, first.Status)
	assert.Equal(t, checkin.StatusOK, *first.Status)
	assert.Equal(t, "Okay", first.Label)
	assert.Equal(t, map[string]int{"ok": 1}, first.Counts)
	require.NotNil(t, first.Render)
	assert.False(t, first.Render.Hatched())

	second := tl.Ticks[1]
	require.NotNil(t, second.Status)
	assert.Equal(t, checkin.StatusError, *second.Status)
	assert.Equal(t, map[string]int{"ok": 1, "error": 1}, second.Counts)
	assert.True(t, second.Render.Hatched())

	for _, i := range []int{2, 3, 4} {
		assert.True(t, tl.Ticks[i].Empty(), "tick %d", i)
		assert.Equal(t, "No data", tl.Ticks[i].Label)
		assert.Nil(t, tl.Ticks[i].Render)
	}

	last := tl.Ticks[5]
	require.NotNil(t, last.Status)
	assert.Equal(t, checkin.StatusTimeout, *last.Status)
	assert.Equal(t, start.Add(time.Hour), last.End)
}

func TestBuildMonitorTimelineDefaults(t *testing.T) {
	tl := BuildMonitorTimeline("m", nil, start, start, Options{})

	require.Len(t, tl.Ticks, DefaultTimelinePoints)
	assert.Equal(t, start.Add(time.Minute), tl.RangeEnd)
	for _, tick := range tl.Ticks {
		assert.True(t, tick.Empty())
	}
}

func TestBuildMonitorTimelineTranslates(t *testing.T) {
	de := &locale.Catalog{Language: "de", Messages: map[string]string{
		"No data": "Keine Daten",
		"Missed":  "Verpasst",
	}}
	tl := BuildMonitorTimeline("m", []models.CheckIn{at(0, checkin.StatusMissed)}, start, start.Add(2*time.Minute), Options{
		Points:    2,
		Localizer: de,
	})

	assert.Equal(t, "Verpasst", tl.Ticks[0].Label)
	assert.Nil(t, tl.Ticks[0].Render, "no lookup means no render spec")
	assert.Equal(t, "Keine Daten", tl.Ticks[1].Label)
}

func TestBuildMonitorTimelineDoesNotMutateInput(t *testing.T) {
	entries := []models.CheckIn{at(30, checkin.StatusOK), at(10, checkin.StatusMissed)}
	BuildMonitorTimeline("m", entries, start, start.Add(time.Hour), Options{Points: 4})
	assert.Equal(t, start.Add(30*time.Minute), entries[0].Timestamp)
}
