package timesheet

import (
	"context"
)

// TimesheetService defines business logic for weekly timesheets. The
// employee identity always comes from the request context, never from
// ambient state.
type TimesheetService interface {
	// GetWeek loads (or defaults) the week, reapplies holiday locks,
	// computes the turnaround credit position and the summary fold.
	GetWeek(ctx context.Context, req GetWeekRequest) (WeekResponse, error)

	// UpdateDay applies one day edit as a pure transform over the
	// client-held week state, enforcing mode invariants and lock state.
	UpdateDay(ctx context.Context, req UpdateDayRequest) (WeekResponse, error)

	// ToggleTurnaround enables or disables a day's turnaround, enforcing
	// the credit cap at toggle time. A rejected toggle leaves the week
	// state unchanged.
	ToggleTurnaround(ctx context.Context, req ToggleTurnaroundRequest) (ToggleTurnaroundResponse, error)

	// SaveWeek assembles, validates and persists the week as a draft.
	SaveWeek(ctx context.Context, req SaveWeekRequest) (WeekResponse, error)

	// SubmitWeek is SaveWeek plus the submission stamp.
	SubmitWeek(ctx context.Context, req SaveWeekRequest) (WeekResponse, error)
}
