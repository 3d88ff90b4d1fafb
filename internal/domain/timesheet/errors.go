package timesheet

import "errors"

// Timesheet domain errors
var (
	// Mutation errors
	ErrTimesheetLocked = errors.New("timesheet has been approved and can no longer be edited")
	ErrDayLocked       = errors.New("day is covered by approved holiday and cannot be edited")
	ErrUnknownDay      = errors.New("unknown weekday name")

	// Turnaround errors
	ErrTurnaroundCreditExceeded = errors.New("no turnaround credits remaining in the last 14 days")
	ErrTurnaroundNotYardDay     = errors.New("turnaround can only be taken on a yard day")
)
