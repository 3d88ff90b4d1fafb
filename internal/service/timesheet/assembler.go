package timesheet

import (
	"github.com/crewdesk/crew-backend-go/internal/domain/timesheet"
	"github.com/crewdesk/crew-backend-go/internal/pkg/timeofday"
	"github.com/crewdesk/crew-backend-go/internal/pkg/validator"
)

// Assembler builds the exact payload written to storage on save/submit:
// default weekday yard times, per-day date and job stamps, midnight-crossing
// annotation, turnaround validation and the credit audit snapshot. Save and
// submit share all of it; only the submission fields differ.
type Assembler struct {
	normalizer *Normalizer
}

func NewAssembler(normalizer *Normalizer) *Assembler {
	return &Assembler{normalizer: normalizer}
}

// Prepare assembles the persistable week. It refuses approved timesheets
// outright and fails all-or-nothing on validation, leaving the input state
// usable for retry.
func (a *Assembler) Prepare(ts timesheet.Timesheet, jobsByDate map[string][]timesheet.JobRef, credits timesheet.CreditAudit) (timesheet.Timesheet, error) {
	if ts.Status.IsApproved() {
		return timesheet.Timesheet{}, timesheet.ErrTimesheetLocked
	}

	dates := timesheet.WeekDates(ts.WeekStart)
	days := make(timesheet.DayMap, len(timesheet.Weekdays))

	for i, day := range timesheet.Weekdays {
		entry := a.normalizer.Normalize(ts.Days[day])

		// Default yard times apply on weekdays only; weekends stay as set.
		weekday := i < 5
		if weekday && entry.Mode == timesheet.ModeYard && len(entry.YardSegments) == 0 && !entry.IsTurnaround {
			entry.YardSegments = []timesheet.Segment{DefaultYardSegment}
		}

		entry.Date = dates[i]
		entry.Jobs = jobsByDate[dates[i]]
		entry.HasJob = len(entry.Jobs) > 0

		annotateOvernight(&entry)

		days[day] = entry
	}

	ts.Days = days
	ts.TurnaroundCredits = &credits

	if err := a.Validate(ts); err != nil {
		return timesheet.Timesheet{}, err
	}

	return ts, nil
}

// Validate enforces the save/submit invariants; a failure aborts the whole
// write with a day-specific message. The turnaround count is re-checked
// against the earned credits here because the client holds the week state
// between toggles and a crafted payload could carry more turnaround days
// than the ledger ever granted.
func (a *Assembler) Validate(ts timesheet.Timesheet) error {
	var errs validator.ValidationErrors

	turnarounds := 0
	for _, day := range timesheet.Weekdays {
		entry := ts.Days[day]
		if entry.Mode == timesheet.ModeYard && entry.IsTurnaround {
			turnarounds++
			if entry.TurnaroundJob == nil || entry.TurnaroundJob.BookingID == "" {
				errs = append(errs, validator.ValidationError{
					Field:   day,
					Message: day + " is a turnaround day but has no job selected",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	if ts.TurnaroundCredits != nil && turnarounds > ts.TurnaroundCredits.Total {
		return timesheet.ErrTurnaroundCreditExceeded
	}

	return nil
}

// annotateOvernight forces the overnight flag when a travel/on-set day ends
// before its base start time of day, implying next-day completion.
func annotateOvernight(e *timesheet.DayEntry) {
	var start, end string
	switch e.Mode {
	case timesheet.ModeTravel:
		start = strVal(e.LeaveTime)
		end = firstNonEmpty(strVal(e.ArriveBack), strVal(e.ArriveTime))
	case timesheet.ModeOnset:
		start = firstNonEmpty(strVal(e.CallTime), strVal(e.LeaveTime))
		end = firstNonEmpty(strVal(e.ArriveBack), strVal(e.WrapTime))
	default:
		return
	}

	startMins, startOK := timeofday.Parse(start)
	endMins, endOK := timeofday.Parse(end)
	if startOK && endOK && endMins < startMins {
		e.Overnight = true
	}
}
