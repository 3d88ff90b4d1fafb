package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewdesk/crew-backend-go/internal/domain/timesheet"
	"github.com/crewdesk/crew-backend-go/internal/pkg/validator"
)

func newAssembler() *Assembler {
	return NewAssembler(NewNormalizer())
}

func TestAssembler_RefusesApprovedWeek(t *testing.T) {
	a := newAssembler()
	ts := timesheet.NewWeek("AB1234", "2026-08-24")
	ts.Status = timesheet.StatusApproved

	_, err := a.Prepare(ts, nil, timesheet.CreditAudit{})

	assert.ErrorIs(t, err, timesheet.ErrTimesheetLocked)
}

func TestAssembler_DefaultYardTimesOnWeekdaysOnly(t *testing.T) {
	a := newAssembler()
	ts := timesheet.NewWeek("AB1234", "2026-08-24")

	got, err := a.Prepare(ts, nil, timesheet.CreditAudit{})
	require.NoError(t, err)

	for i, day := range timesheet.Weekdays {
		segments := got.Days[day].YardSegments
		if i < 5 {
			require.Len(t, segments, 1, "%s should get the default block", day)
			assert.Equal(t, DefaultYardSegment, segments[0])
		} else {
			assert.Empty(t, segments, "%s should stay empty", day)
		}
	}
}

func TestAssembler_StampsDatesAndJobs(t *testing.T) {
	a := newAssembler()
	ts := timesheet.NewWeek("AB1234", "2026-08-24")

	jobs := map[string][]timesheet.JobRef{
		"2026-08-25": {{BookingID: "b1", JobNumber: "J-104", Client: "Quarry Films"}},
	}

	got, err := a.Prepare(ts, jobs, timesheet.CreditAudit{})
	require.NoError(t, err)

	monday := got.Days["Monday"]
	assert.Equal(t, "2026-08-24", monday.Date)
	assert.False(t, monday.HasJob)

	tuesday := got.Days["Tuesday"]
	assert.Equal(t, "2026-08-25", tuesday.Date)
	assert.True(t, tuesday.HasJob)
	require.Len(t, tuesday.Jobs, 1)
	assert.Equal(t, "J-104", tuesday.Jobs[0].JobNumber)
}

func TestAssembler_TurnaroundWithoutJobBlocksSave(t *testing.T) {
	a := newAssembler()
	ts := timesheet.NewWeek("AB1234", "2026-08-24")
	ts.Days["Thursday"] = timesheet.DayEntry{Mode: timesheet.ModeYard, IsTurnaround: true}

	_, err := a.Prepare(ts, nil, timesheet.CreditAudit{})

	require.Error(t, err)
	verrs, ok := err.(validator.ValidationErrors)
	require.True(t, ok)
	require.Len(t, verrs, 1)
	assert.Equal(t, "Thursday", verrs[0].Field)
}

func TestAssembler_TurnaroundWithJobPasses(t *testing.T) {
	a := newAssembler()
	ts := timesheet.NewWeek("AB1234", "2026-08-24")
	ts.Days["Thursday"] = timesheet.DayEntry{
		Mode:          timesheet.ModeYard,
		IsTurnaround:  true,
		TurnaroundJob: &timesheet.JobRef{BookingID: "b2", JobNumber: "J-200"},
	}

	got, err := a.Prepare(ts, nil, timesheet.CreditAudit{Total: 1, SourceDates: []string{"2026-08-16"}})
	require.NoError(t, err)

	thursday := got.Days["Thursday"]
	assert.True(t, thursday.IsTurnaround)
	assert.Empty(t, thursday.YardSegments, "a turnaround day never receives default blocks")
	require.NotNil(t, got.TurnaroundCredits)
	assert.Equal(t, 1, got.TurnaroundCredits.Total)
}

func TestAssembler_TurnaroundsBeyondEarnedCreditsBlockSave(t *testing.T) {
	a := newAssembler()
	ts := timesheet.NewWeek("AB1234", "2026-08-24")
	ts.Days["Tuesday"] = timesheet.DayEntry{
		Mode:          timesheet.ModeYard,
		IsTurnaround:  true,
		TurnaroundJob: &timesheet.JobRef{BookingID: "b1", JobNumber: "J-104"},
	}
	ts.Days["Thursday"] = timesheet.DayEntry{
		Mode:          timesheet.ModeYard,
		IsTurnaround:  true,
		TurnaroundJob: &timesheet.JobRef{BookingID: "b2", JobNumber: "J-200"},
	}

	_, err := a.Prepare(ts, nil, timesheet.CreditAudit{Total: 1, SourceDates: []string{"2026-08-16"}})
	assert.ErrorIs(t, err, timesheet.ErrTurnaroundCreditExceeded)

	got, err := a.Prepare(ts, nil, timesheet.CreditAudit{Total: 2, SourceDates: []string{"2026-08-16", "2026-08-19"}})
	require.NoError(t, err)
	assert.True(t, got.Days["Tuesday"].IsTurnaround)
	assert.True(t, got.Days["Thursday"].IsTurnaround)
}

func TestAssembler_OvernightForcedWhenEndBeforeStart(t *testing.T) {
	a := newAssembler()
	ts := timesheet.NewWeek("AB1234", "2026-08-24")
	ts.Days["Monday"] = timesheet.DayEntry{
		Mode:       timesheet.ModeTravel,
		LeaveTime:  strPtr("22:00"),
		ArriveTime: strPtr("03:00"),
	}
	ts.Days["Tuesday"] = timesheet.DayEntry{
		Mode:     timesheet.ModeOnset,
		CallTime: strPtr("18:00"),
		WrapTime: strPtr("02:30"),
	}
	ts.Days["Wednesday"] = timesheet.DayEntry{
		Mode:       timesheet.ModeTravel,
		LeaveTime:  strPtr("08:00"),
		ArriveTime: strPtr("17:00"),
	}

	got, err := a.Prepare(ts, nil, timesheet.CreditAudit{})
	require.NoError(t, err)

	assert.True(t, got.Days["Monday"].Overnight)
	assert.True(t, got.Days["Tuesday"].Overnight)
	assert.False(t, got.Days["Wednesday"].Overnight)
}
