package timesheet

import (
	"github.com/crewdesk/crew-backend-go/internal/domain/timesheet"
)

// DefaultYardSegment is the standard yard working block applied when a yard
// day has no logged times yet.
var DefaultYardSegment = timesheet.Segment{Start: "08:00", End: "16:30"}

// Normalizer fills mode-specific defaults so every day entry is
// structurally complete before locking, aggregation or persistence. It is
// the single owner of day defaults; no other component re-derives them.
type Normalizer struct {
}

func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize is total and idempotent: normalizing twice yields the same
// result as once. It never invents a turnaround job.
func (n *Normalizer) Normalize(e timesheet.DayEntry) timesheet.DayEntry {
	if e.Mode == "" {
		e.Mode = timesheet.ModeYard
	}

	// Turnaround is only valid on yard days.
	if e.Mode != timesheet.ModeYard {
		e.IsTurnaround = false
	}
	if !e.IsTurnaround {
		e.TurnaroundJob = nil
	}

	switch e.Mode {
	case timesheet.ModeYard:
		if e.YardSegments == nil {
			if e.IsTurnaround {
				// Turnaround days intentionally start with zero blocks.
				e.YardSegments = []timesheet.Segment{}
			} else {
				e.YardSegments = []timesheet.Segment{DefaultYardSegment}
			}
		}
		if e.LunchSup == nil {
			e.LunchSup = boolPtr(len(e.YardSegments) > 0)
		}
		e.LeaveTime, e.ArriveTime = nil, nil
		e.CallTime, e.WrapTime, e.ArriveBack = nil, nil, nil
		e.PrecallMinutes = nil
		e.TravelLunchSup = boolPtr(false)
		e.TravelPD = false
		e.MealSup = boolPtr(false)
		e.NightShoot = false
		e.Overnight = false

	case timesheet.ModeTravel:
		e.YardSegments = nil
		e.LunchSup = boolPtr(false)
		if e.TravelLunchSup == nil {
			e.TravelLunchSup = boolPtr(true)
		}
		e.CallTime, e.WrapTime = nil, nil
		e.PrecallMinutes = nil
		e.MealSup = boolPtr(false)
		e.NightShoot = false

	case timesheet.ModeOnset:
		e.YardSegments = nil
		e.LunchSup = boolPtr(false)
		e.TravelLunchSup = boolPtr(false)
		e.TravelPD = false
		if e.MealSup == nil {
			e.MealSup = boolPtr(true)
		}

	case timesheet.ModeOff, timesheet.ModeHoliday, timesheet.ModeBankHoliday:
		e.YardSegments = nil
		e.LunchSup = boolPtr(false)
		e.LeaveTime, e.ArriveTime = nil, nil
		e.CallTime, e.WrapTime, e.ArriveBack = nil, nil, nil
		e.PrecallMinutes = nil
		e.TravelLunchSup = boolPtr(false)
		e.TravelPD = false
		e.MealSup = boolPtr(false)
		e.NightShoot = false
		e.Overnight = false
	}

	return e
}

func boolPtr(v bool) *bool {
	return &v
}

func boolVal(p *bool) bool {
	return p != nil && *p
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
