package timesheet

import (
	"github.com/crewdesk/crew-backend-go/internal/domain/holiday"
	"github.com/crewdesk/crew-backend-go/internal/domain/timesheet"
)

// LockResolver overwrites days covered by approved holiday or bank holiday
// and annotates half-day holidays. It is reapplied whenever holiday source
// data changes; applying it twice yields the same week.
type LockResolver struct {
	normalizer *Normalizer
}

func NewLockResolver(normalizer *Normalizer) *LockResolver {
	return &LockResolver{normalizer: normalizer}
}

// Apply resolves every day of the week in priority order: full personal
// holiday wins over bank holiday, half-day holiday keeps the day editable
// as yard time, and unaffected days pass through the normalizer with user
// edits preserved.
func (l *LockResolver) Apply(ts timesheet.Timesheet, hol map[string]holiday.DayInfo, bank map[string]holiday.BankHolidayInfo) timesheet.Timesheet {
	days := make(timesheet.DayMap, len(timesheet.Weekdays))

	for _, day := range timesheet.Weekdays {
		entry := ts.Days[day]
		h := hol[day]
		b := bank[day]

		switch {
		case h.HasHoliday && !h.IsHalfDay:
			// Approved full-day absence is immutable and must never show
			// stale work-time fields. Notes survive the overwrite.
			entry = timesheet.DayEntry{
				Mode:     timesheet.ModeHoliday,
				DayNotes: entry.DayNotes,
			}

		case b.NotWorking && !h.HasHoliday:
			entry = timesheet.DayEntry{
				Mode:     timesheet.ModeBankHoliday,
				DayNotes: entry.DayNotes,
			}

		case h.HasHoliday && h.IsHalfDay:
			// The working half is logged as yard time.
			entry.Mode = timesheet.ModeYard
			entry.HalfHoliday = true
			if h.Label != "" {
				entry.HalfHolidayLabel = h.Label
			} else {
				entry.HalfHolidayLabel = "Half day"
			}

		default:
			entry.HalfHoliday = false
			entry.HalfHolidayLabel = ""
		}

		days[day] = l.normalizer.Normalize(entry)
	}

	ts.Days = days
	return ts
}
