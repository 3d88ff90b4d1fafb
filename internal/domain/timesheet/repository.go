package timesheet

import (
	"context"
)

// TimesheetRepository defines data access for weekly timesheets. Weeks are
// keyed (employee code, ISO week start); a save is a single upsert so a
// failed write never leaves a partially updated week behind.
type TimesheetRepository interface {
	// GetByKey retrieves one employee week. Returns pgx.ErrNoRows when the
	// week has never been saved.
	GetByKey(ctx context.Context, employeeCode, weekStart string) (Timesheet, error)

	// GetByWeekStarts retrieves the saved weeks among the given week starts,
	// used by the turnaround credit lookback. Missing weeks are simply
	// absent from the result.
	GetByWeekStarts(ctx context.Context, employeeCode string, weekStarts []string) ([]Timesheet, error)

	// GetStatusForUpdate reads the stored status with a row lock, so the
	// approved gate is evaluated immediately before a write.
	GetStatusForUpdate(ctx context.Context, employeeCode, weekStart string) (Status, error)

	// Upsert writes the full week payload in one statement.
	Upsert(ctx context.Context, ts Timesheet) (Timesheet, error)
}
