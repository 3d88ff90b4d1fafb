package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMondayOf(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"monday maps to itself", time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC), "2026-08-24"},
		{"wednesday maps back", time.Date(2026, 8, 26, 23, 59, 0, 0, time.UTC), "2026-08-24"},
		{"sunday maps back six days", time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), "2026-08-24"},
		{"across month boundary", time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC), "2026-08-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MondayOf(tt.in).Format("2006-01-02"))
		})
	}
}

func TestWeekDates(t *testing.T) {
	dates := WeekDates("2026-08-24")

	assert.Equal(t, "2026-08-24", dates[0])
	assert.Equal(t, "2026-08-28", dates[4])
	assert.Equal(t, "2026-08-30", dates[6])

	// Malformed week start yields placeholders, not a panic.
	blank := WeekDates("not-a-date")
	assert.Len(t, blank, 7)
	assert.Equal(t, "", blank[0])
}

func TestDateFor(t *testing.T) {
	assert.Equal(t, "2026-08-27", DateFor("2026-08-24", "Thursday"))
	assert.Equal(t, "", DateFor("2026-08-24", "Funday"))
}

func TestNewWeek(t *testing.T) {
	ts := NewWeek("AB1234", "2026-08-24")

	assert.Equal(t, "AB1234_2026-08-24", ts.Key())
	assert.Equal(t, StatusDraft, ts.Status)
	assert.Len(t, ts.Days, 7)
	assert.Equal(t, ModeYard, ts.Days["Monday"].Mode)
	assert.Equal(t, ModeYard, ts.Days["Friday"].Mode)
	assert.Equal(t, ModeOff, ts.Days["Saturday"].Mode)
	assert.Equal(t, ModeOff, ts.Days["Sunday"].Mode)
}

func TestFillMissingDays(t *testing.T) {
	partial := DayMap{
		"Monday":  {Mode: ModeTravel},
		"Tuesday": {Mode: ModeYard, DayNotes: "night shoot"},
	}

	filled := FillMissingDays(partial)

	assert.Len(t, filled, 7)
	assert.Equal(t, ModeTravel, filled["Monday"].Mode)
	assert.Equal(t, "night shoot", filled["Tuesday"].DayNotes)
	assert.Equal(t, ModeYard, filled["Wednesday"].Mode)
	assert.Equal(t, ModeOff, filled["Saturday"].Mode)
	assert.Equal(t, ModeOff, filled["Sunday"].Mode)

	// The input map is never mutated.
	assert.Len(t, partial, 2)

	assert.Len(t, FillMissingDays(nil), 7)
}

func TestStatusIsApproved(t *testing.T) {
	assert.False(t, StatusDraft.IsApproved())
	assert.False(t, StatusSubmitted.IsApproved())
	assert.True(t, StatusApproved.IsApproved())
}
