package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewdesk/crew-backend-go/internal/domain/timesheet"
)

func TestNormalizer_EmptyEntryDefaultsToYard(t *testing.T) {
	n := NewNormalizer()

	got := n.Normalize(timesheet.DayEntry{})

	assert.Equal(t, timesheet.ModeYard, got.Mode)
	require.Len(t, got.YardSegments, 1)
	assert.Equal(t, DefaultYardSegment, got.YardSegments[0])
	require.NotNil(t, got.LunchSup)
	assert.True(t, *got.LunchSup)
}

func TestNormalizer_Idempotent(t *testing.T) {
	n := NewNormalizer()
	leave := "07:00"
	arrive := "19:00"

	entries := []timesheet.DayEntry{
		{},
		{Mode: timesheet.ModeYard, IsTurnaround: true},
		{Mode: timesheet.ModeTravel, LeaveTime: &leave, ArriveTime: &arrive, TravelPD: true},
		{Mode: timesheet.ModeOnset, NightShoot: true, DayNotes: "night shoot"},
		{Mode: timesheet.ModeOff},
		{Mode: timesheet.ModeHoliday},
	}

	for _, e := range entries {
		once := n.Normalize(e)
		twice := n.Normalize(once)
		assert.Equal(t, once, twice, "normalize must be idempotent for mode %q", e.Mode)
	}
}

func TestNormalizer_ModeExclusivity(t *testing.T) {
	n := NewNormalizer()
	call := "09:00"
	wrap := "21:00"

	// A travel entry carrying leftover on-set and yard fields must come out
	// as pure travel.
	got := n.Normalize(timesheet.DayEntry{
		Mode:         timesheet.ModeTravel,
		YardSegments: []timesheet.Segment{{Start: "08:00", End: "16:30"}},
		CallTime:     &call,
		WrapTime:     &wrap,
		NightShoot:   true,
	})

	assert.Nil(t, got.YardSegments)
	assert.Nil(t, got.CallTime)
	assert.Nil(t, got.WrapTime)
	assert.False(t, got.NightShoot)
	require.NotNil(t, got.TravelLunchSup)
	assert.True(t, *got.TravelLunchSup)
	require.NotNil(t, got.LunchSup)
	assert.False(t, *got.LunchSup)
}

func TestNormalizer_TurnaroundOnlyOnYardDays(t *testing.T) {
	n := NewNormalizer()

	got := n.Normalize(timesheet.DayEntry{
		Mode:          timesheet.ModeTravel,
		IsTurnaround:  true,
		TurnaroundJob: &timesheet.JobRef{BookingID: "b1"},
	})

	assert.False(t, got.IsTurnaround)
	assert.Nil(t, got.TurnaroundJob)
}

func TestNormalizer_TurnaroundYardDayStartsEmpty(t *testing.T) {
	n := NewNormalizer()

	got := n.Normalize(timesheet.DayEntry{Mode: timesheet.ModeYard, IsTurnaround: true})

	require.NotNil(t, got.YardSegments)
	assert.Empty(t, got.YardSegments)
	require.NotNil(t, got.LunchSup)
	assert.False(t, *got.LunchSup, "no worked blocks means no lunch by default")
}

func TestNormalizer_UserOverridesSurvive(t *testing.T) {
	n := NewNormalizer()
	lunchOff := false

	got := n.Normalize(timesheet.DayEntry{
		Mode:         timesheet.ModeYard,
		YardSegments: []timesheet.Segment{{Start: "09:00", End: "17:00"}},
		LunchSup:     &lunchOff,
	})

	require.NotNil(t, got.LunchSup)
	assert.False(t, *got.LunchSup, "an explicit lunch choice must not be re-defaulted")

	again := n.Normalize(got)
	assert.Equal(t, got, again)
}

func TestNormalizer_OffDayClearsEverything(t *testing.T) {
	n := NewNormalizer()
	leave := "07:00"

	got := n.Normalize(timesheet.DayEntry{
		Mode:         timesheet.ModeOff,
		YardSegments: []timesheet.Segment{{Start: "08:00", End: "16:30"}},
		LeaveTime:    &leave,
		TravelPD:     true,
		Overnight:    true,
		DayNotes:     "keep me",
	})

	assert.Nil(t, got.YardSegments)
	assert.Nil(t, got.LeaveTime)
	assert.False(t, got.TravelPD)
	assert.False(t, got.Overnight)
	assert.Equal(t, "keep me", got.DayNotes)
}
