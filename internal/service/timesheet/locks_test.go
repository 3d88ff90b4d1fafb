package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewdesk/crew-backend-go/internal/domain/holiday"
	"github.com/crewdesk/crew-backend-go/internal/domain/timesheet"
)

func newLockTestWeek() timesheet.Timesheet {
	return timesheet.NewWeek("AB1234", "2026-08-24")
}

func TestLockResolver_FullHolidayOverwritesDay(t *testing.T) {
	r := NewLockResolver(NewNormalizer())
	ts := newLockTestWeek()
	ts.Days["Tuesday"] = timesheet.DayEntry{
		Mode:         timesheet.ModeYard,
		YardSegments: []timesheet.Segment{{Start: "08:00", End: "16:30"}},
		DayNotes:     "left early",
	}

	hol := map[string]holiday.DayInfo{
		"Tuesday": {HasHoliday: true, PaidStatus: "paid", LeaveType: "holiday"},
	}

	got := r.Apply(ts, hol, nil)

	day := got.Days["Tuesday"]
	assert.Equal(t, timesheet.ModeHoliday, day.Mode)
	assert.Nil(t, day.YardSegments)
	assert.Equal(t, "left early", day.DayNotes)
}

func TestLockResolver_PersonalHolidayBeatsBankHoliday(t *testing.T) {
	r := NewLockResolver(NewNormalizer())
	ts := newLockTestWeek()

	hol := map[string]holiday.DayInfo{
		"Monday": {HasHoliday: true},
	}
	bank := map[string]holiday.BankHolidayInfo{
		"Monday": {Name: "Summer bank holiday", NotWorking: true},
	}

	got := r.Apply(ts, hol, bank)

	assert.Equal(t, timesheet.ModeHoliday, got.Days["Monday"].Mode)
}

func TestLockResolver_BankHolidayLocksWhenNotWorking(t *testing.T) {
	r := NewLockResolver(NewNormalizer())
	ts := newLockTestWeek()

	bank := map[string]holiday.BankHolidayInfo{
		"Monday": {Name: "Summer bank holiday", NotWorking: true},
		"Friday": {Name: "Worked public holiday", NotWorking: false},
	}

	got := r.Apply(ts, nil, bank)

	assert.Equal(t, timesheet.ModeBankHoliday, got.Days["Monday"].Mode)
	assert.Equal(t, timesheet.ModeYard, got.Days["Friday"].Mode, "a worked bank holiday stays editable")
}

func TestLockResolver_HalfDayStaysEditableYard(t *testing.T) {
	r := NewLockResolver(NewNormalizer())
	ts := newLockTestWeek()
	ts.Days["Wednesday"] = timesheet.DayEntry{
		Mode:         timesheet.ModeYard,
		YardSegments: []timesheet.Segment{{Start: "08:00", End: "12:00"}},
	}

	hol := map[string]holiday.DayInfo{
		"Wednesday": {HasHoliday: true, IsHalfDay: true, Label: "Half day (PM)"},
	}

	got := r.Apply(ts, hol, nil)

	day := got.Days["Wednesday"]
	assert.Equal(t, timesheet.ModeYard, day.Mode)
	assert.True(t, day.HalfHoliday)
	assert.Equal(t, "Half day (PM)", day.HalfHolidayLabel)
	require.Len(t, day.YardSegments, 1)
	assert.Equal(t, "12:00", day.YardSegments[0].End, "logged times survive a half-day annotation")
}

func TestLockResolver_HalfDayAnnotationClearedWhenHolidayGone(t *testing.T) {
	r := NewLockResolver(NewNormalizer())
	ts := newLockTestWeek()
	ts.Days["Wednesday"] = timesheet.DayEntry{
		Mode:             timesheet.ModeYard,
		HalfHoliday:      true,
		HalfHolidayLabel: "Half day (AM)",
	}

	got := r.Apply(ts, nil, nil)

	day := got.Days["Wednesday"]
	assert.False(t, day.HalfHoliday)
	assert.Empty(t, day.HalfHolidayLabel)
}

func TestLockResolver_Idempotent(t *testing.T) {
	r := NewLockResolver(NewNormalizer())
	ts := newLockTestWeek()
	ts.Days["Thursday"] = timesheet.DayEntry{Mode: timesheet.ModeTravel}

	hol := map[string]holiday.DayInfo{
		"Monday":    {HasHoliday: true},
		"Wednesday": {HasHoliday: true, IsHalfDay: true},
	}
	bank := map[string]holiday.BankHolidayInfo{
		"Friday": {Name: "Public holiday", NotWorking: true},
	}

	once := r.Apply(ts, hol, bank)
	twice := r.Apply(once, hol, bank)

	assert.Equal(t, once.Days, twice.Days)
}
