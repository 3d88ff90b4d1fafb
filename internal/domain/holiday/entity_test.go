package holiday

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHolidayRequest_Covers(t *testing.T) {
	r := HolidayRequest{StartDate: "2026-08-25", EndDate: "2026-08-27"}

	assert.False(t, r.Covers("2026-08-24"))
	assert.True(t, r.Covers("2026-08-25"))
	assert.True(t, r.Covers("2026-08-26"))
	assert.True(t, r.Covers("2026-08-27"))
	assert.False(t, r.Covers("2026-08-28"))
}

func TestHolidayRequest_HalfDayMeta(t *testing.T) {
	morning := HalfDayMorning
	afternoon := HalfDayAfternoon

	tests := []struct {
		name      string
		request   HolidayRequest
		date      string
		wantHalf  bool
		wantLabel string
	}{
		{
			name:      "morning half day",
			request:   HolidayRequest{StartDate: "2026-08-25", EndDate: "2026-08-25", HalfDay: true, HalfDayPeriod: &morning},
			date:      "2026-08-25",
			wantHalf:  true,
			wantLabel: "Half day (AM)",
		},
		{
			name:      "afternoon half day",
			request:   HolidayRequest{StartDate: "2026-08-25", EndDate: "2026-08-25", HalfDay: true, HalfDayPeriod: &afternoon},
			date:      "2026-08-25",
			wantHalf:  true,
			wantLabel: "Half day (PM)",
		},
		{
			name:      "half day without period",
			request:   HolidayRequest{StartDate: "2026-08-25", EndDate: "2026-08-25", HalfDay: true},
			date:      "2026-08-25",
			wantHalf:  true,
			wantLabel: "Half day",
		},
		{
			name:     "multi-day request never counts as half",
			request:  HolidayRequest{StartDate: "2026-08-25", EndDate: "2026-08-26", HalfDay: true},
			date:     "2026-08-25",
			wantHalf: false,
		},
		{
			name:     "date outside range",
			request:  HolidayRequest{StartDate: "2026-08-25", EndDate: "2026-08-25", HalfDay: true},
			date:     "2026-08-26",
			wantHalf: false,
		},
		{
			name:     "full day request",
			request:  HolidayRequest{StartDate: "2026-08-25", EndDate: "2026-08-25"},
			date:     "2026-08-25",
			wantHalf: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			half, label := tt.request.HalfDayMeta(tt.date)
			assert.Equal(t, tt.wantHalf, half)
			assert.Equal(t, tt.wantLabel, label)
		})
	}
}
