package timesheet

import (
	"sort"
	"strings"
	"time"

	"github.com/crewdesk/crew-backend-go/internal/domain/timesheet"
)

// CreditWindowDays is the trailing lookback, inclusive of today.
const CreditWindowDays = 14

// nightShootSignals are the literal note markers that earn a turnaround
// credit. Case-insensitive substring match, preserved as-is from the
// business rule; detection is intentionally not a structured flag.
var nightShootSignals = []string{"night shoot", "nightshoot", "night-shoot"}

// ContainsNightShootSignal reports whether free-text day notes carry the
// night-shoot marker.
func ContainsNightShootSignal(notes string) bool {
	lower := strings.ToLower(notes)
	for _, signal := range nightShootSignals {
		if strings.Contains(lower, signal) {
			return true
		}
	}
	return false
}

// CreditLedger computes turnaround credits earned over the trailing 14-day
// window and tracks consumption within the week being edited. Credits are
// earned one per distinct calendar date bearing a night-shoot note and
// consumed 1:1 by turnaround yard days.
type CreditLedger struct {
}

func NewCreditLedger() *CreditLedger {
	return &CreditLedger{}
}

// LookbackWeekStarts returns the ISO Monday week starts (the current week
// and the two preceding) that can contain any date of the trailing window.
func (l *CreditLedger) LookbackWeekStarts(today time.Time) []string {
	monday := timesheet.MondayOf(today)
	starts := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		starts = append(starts, monday.AddDate(0, 0, -7*i).Format("2006-01-02"))
	}
	return starts
}

// Compute scans the given saved weeks for night-shoot notes on dates within
// the trailing window ending today (inclusive). One credit per distinct
// date, even when the note sits on a turnaround day itself.
func (l *CreditLedger) Compute(weeks []timesheet.Timesheet, today time.Time) timesheet.CreditAudit {
	todayISO := today.Format("2006-01-02")
	windowStartISO := today.AddDate(0, 0, -(CreditWindowDays - 1)).Format("2006-01-02")

	sources := make(map[string]bool)
	for _, week := range weeks {
		dates := timesheet.WeekDates(week.WeekStart)
		for i, day := range timesheet.Weekdays {
			date := dates[i]
			if date < windowStartISO || date > todayISO {
				continue
			}
			if ContainsNightShootSignal(week.Days[day].DayNotes) {
				sources[date] = true
			}
		}
	}

	sourceDates := make([]string, 0, len(sources))
	for date := range sources {
		sourceDates = append(sourceDates, date)
	}
	sort.Strings(sourceDates)

	return timesheet.CreditAudit{
		Total:       len(sourceDates),
		SourceDates: sourceDates,
	}
}

// UsedThisWeek counts the turnaround yard days already taken in the week
// being edited.
func (l *CreditLedger) UsedThisWeek(ts timesheet.Timesheet) int {
	used := 0
	for _, day := range timesheet.Weekdays {
		entry := ts.Days[day]
		if entry.Mode == timesheet.ModeYard && entry.IsTurnaround {
			used++
		}
	}
	return used
}

// CanEnable reports whether one more turnaround day fits within the earned
// credits. Disabling is always permitted.
func (l *CreditLedger) CanEnable(ts timesheet.Timesheet, audit timesheet.CreditAudit) bool {
	return l.UsedThisWeek(ts) < audit.Total
}
