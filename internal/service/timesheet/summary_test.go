package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crewdesk/crew-backend-go/internal/domain/holiday"
	"github.com/crewdesk/crew-backend-go/internal/domain/timesheet"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestSummarizer_DayMinutes(t *testing.T) {
	s := NewSummarizer()

	tests := []struct {
		name  string
		entry timesheet.DayEntry
		want  int
	}{
		{
			name: "single yard block",
			entry: timesheet.DayEntry{
				Mode:         timesheet.ModeYard,
				YardSegments: []timesheet.Segment{{Start: "08:00", End: "16:30"}},
			},
			want: 510,
		},
		{
			name: "split yard blocks",
			entry: timesheet.DayEntry{
				Mode: timesheet.ModeYard,
				YardSegments: []timesheet.Segment{
					{Start: "08:00", End: "12:00"},
					{Start: "13:00", End: "17:30"},
				},
			},
			want: 510,
		},
		{
			name:  "travel leave to arrive",
			entry: timesheet.DayEntry{Mode: timesheet.ModeTravel, LeaveTime: strPtr("06:00"), ArriveTime: strPtr("11:15")},
			want:  315,
		},
		{
			name:  "onset call to wrap across midnight",
			entry: timesheet.DayEntry{Mode: timesheet.ModeOnset, CallTime: strPtr("20:00"), WrapTime: strPtr("04:00")},
			want:  480,
		},
		{
			name: "onset precall added to unit call",
			entry: timesheet.DayEntry{
				Mode:           timesheet.ModeOnset,
				CallTime:       strPtr("09:00"),
				WrapTime:       strPtr("19:00"),
				PrecallMinutes: intPtr(30),
			},
			want: 630,
		},
		{
			name: "onset door to door without call",
			entry: timesheet.DayEntry{
				Mode:           timesheet.ModeOnset,
				LeaveTime:      strPtr("07:00"),
				ArriveBack:     strPtr("21:00"),
				PrecallMinutes: intPtr(30),
			},
			want: 840,
		},
		{
			name:  "off day",
			entry: timesheet.DayEntry{Mode: timesheet.ModeOff},
			want:  0,
		},
		{
			name:  "holiday day",
			entry: timesheet.DayEntry{Mode: timesheet.ModeHoliday},
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.DayMinutes(tt.entry))
		})
	}
}

func TestSummarizer_StandardWeek(t *testing.T) {
	s := NewSummarizer()
	n := NewNormalizer()

	// Five default yard days, weekend off.
	ts := timesheet.NewWeek("AB1234", "2026-08-24")
	for i, day := range timesheet.Weekdays {
		entry := ts.Days[day]
		if i >= 5 {
			entry.Mode = timesheet.ModeOff
		}
		ts.Days[day] = n.Normalize(entry)
	}

	got := s.Summarize(ts, nil, nil)

	assert.Equal(t, 2550, got.TotalMinutes)
	assert.Equal(t, "42h 30m", got.TotalFormatted)
	assert.Equal(t, 5, got.YardDays)
	assert.Equal(t, 5, got.LunchCount)
	assert.Equal(t, 2, got.OffDays)
	assert.Equal(t, 510, got.DayMinutes["Monday"])
	assert.Equal(t, 0, got.DayMinutes["Saturday"])
}

func TestSummarizer_MixedWeekCounts(t *testing.T) {
	s := NewSummarizer()
	n := NewNormalizer()

	ts := timesheet.NewWeek("AB1234", "2026-08-24")
	ts.Days["Monday"] = n.Normalize(timesheet.DayEntry{
		Mode:       timesheet.ModeTravel,
		LeaveTime:  strPtr("06:00"),
		ArriveTime: strPtr("12:00"),
		TravelPD:   true,
	})
	ts.Days["Tuesday"] = n.Normalize(timesheet.DayEntry{
		Mode:       timesheet.ModeOnset,
		CallTime:   strPtr("18:00"),
		WrapTime:   strPtr("02:00"),
		NightShoot: true,
		Overnight:  true,
	})
	ts.Days["Wednesday"] = n.Normalize(timesheet.DayEntry{Mode: timesheet.ModeHoliday})
	ts.Days["Thursday"] = n.Normalize(timesheet.DayEntry{Mode: timesheet.ModeBankHoliday})
	ts.Days["Friday"] = n.Normalize(timesheet.DayEntry{Mode: timesheet.ModeYard, IsTurnaround: true})
	ts.Days["Saturday"] = n.Normalize(timesheet.DayEntry{Mode: timesheet.ModeOff})
	ts.Days["Sunday"] = n.Normalize(timesheet.DayEntry{Mode: timesheet.ModeOff})

	hol := map[string]holiday.DayInfo{
		"Wednesday": {HasHoliday: true},
		"Monday":    {HasHoliday: true, IsHalfDay: true},
	}

	got := s.Summarize(ts, hol, nil)

	assert.Equal(t, 360, got.TravelMinutes)
	assert.Equal(t, 480, got.OnsetMinutes)
	assert.Equal(t, 0, got.YardMinutes, "turnaround day has no blocks yet")
	assert.Equal(t, 1, got.TravelDays)
	assert.Equal(t, 1, got.OnsetDays)
	assert.Equal(t, 1, got.YardDays)
	assert.Equal(t, 1, got.HolidayDays)
	assert.Equal(t, 1, got.BankHolidayDays)
	assert.Equal(t, 2, got.OffDays)
	assert.Equal(t, 1, got.HalfHolidayDays)
	assert.Equal(t, 1, got.TravelPDCount)
	assert.Equal(t, 1, got.TravelLunchCount)
	assert.Equal(t, 1, got.NightShootCount)
	assert.Equal(t, 1, got.OvernightCount)
	assert.Equal(t, 1, got.MealSupCount)
	assert.Equal(t, 1, got.TurnaroundCount)
	assert.Equal(t, 840, got.TotalMinutes)
	assert.Equal(t, "14h", got.TotalFormatted)
}
