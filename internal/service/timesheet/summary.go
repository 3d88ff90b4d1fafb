package timesheet

import (
	"github.com/crewdesk/crew-backend-go/internal/domain/holiday"
	"github.com/crewdesk/crew-backend-go/internal/domain/timesheet"
	"github.com/crewdesk/crew-backend-go/internal/pkg/timeofday"
)

// Summarizer folds a week's day entries into the hours summary. It is pure
// and read-only: every output field is reproducible from the seven entries
// plus the two holiday maps.
type Summarizer struct {
}

func NewSummarizer() *Summarizer {
	return &Summarizer{}
}

// DayMinutes derives the worked minutes for one day entry by mode.
func (s *Summarizer) DayMinutes(e timesheet.DayEntry) int {
	switch e.Mode {
	case timesheet.ModeYard:
		total := 0
		for _, seg := range e.YardSegments {
			total += timeofday.Duration(seg.Start, seg.End)
		}
		return total

	case timesheet.ModeTravel:
		return timeofday.Duration(strVal(e.LeaveTime), strVal(e.ArriveTime))

	case timesheet.ModeOnset:
		var minutes int
		call := strVal(e.CallTime)
		wrap := strVal(e.WrapTime)
		if call != "" && wrap != "" {
			minutes = timeofday.Duration(call, wrap)
		} else {
			start := firstNonEmpty(strVal(e.LeaveTime), strVal(e.ArriveTime), call)
			end := firstNonEmpty(strVal(e.ArriveBack), wrap)
			minutes = timeofday.Duration(start, end)
		}
		// Pre-call only counts against a unit call.
		if call != "" && e.PrecallMinutes != nil {
			minutes += *e.PrecallMinutes
		}
		return minutes

	default:
		// off / holiday / bankholiday
		return 0
	}
}

// Summarize folds the whole week. The holiday maps contribute the half-day
// count so the summary stays reproducible even before locks are reapplied.
func (s *Summarizer) Summarize(ts timesheet.Timesheet, hol map[string]holiday.DayInfo, bank map[string]holiday.BankHolidayInfo) timesheet.WeekSummary {
	summary := timesheet.WeekSummary{
		DayMinutes: make(map[string]int, len(timesheet.Weekdays)),
	}

	for _, day := range timesheet.Weekdays {
		entry := ts.Days[day]
		minutes := s.DayMinutes(entry)
		summary.DayMinutes[day] = minutes
		summary.TotalMinutes += minutes

		switch entry.Mode {
		case timesheet.ModeYard:
			summary.YardMinutes += minutes
			summary.YardDays++
			if boolVal(entry.LunchSup) {
				summary.LunchCount++
			}
			if entry.IsTurnaround {
				summary.TurnaroundCount++
			}
		case timesheet.ModeTravel:
			summary.TravelMinutes += minutes
			summary.TravelDays++
			if boolVal(entry.TravelLunchSup) {
				summary.TravelLunchCount++
			}
			if entry.TravelPD {
				summary.TravelPDCount++
			}
		case timesheet.ModeOnset:
			summary.OnsetMinutes += minutes
			summary.OnsetDays++
			if boolVal(entry.MealSup) {
				summary.MealSupCount++
			}
			if entry.NightShoot {
				summary.NightShootCount++
			}
		case timesheet.ModeOff:
			summary.OffDays++
		case timesheet.ModeHoliday:
			summary.HolidayDays++
		case timesheet.ModeBankHoliday:
			summary.BankHolidayDays++
		}

		if entry.Overnight {
			summary.OvernightCount++
		}

		if h := hol[day]; h.HasHoliday && h.IsHalfDay {
			summary.HalfHolidayDays++
		}
	}

	summary.TotalFormatted = timeofday.FormatDuration(summary.TotalMinutes)
	return summary
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
