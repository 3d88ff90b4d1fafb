package holiday

import (
	"context"
)

// HolidayService defines business logic for holiday requests and the
// per-week holiday views consumed by the timesheet engine.
type HolidayService interface {
	// Request submits a new holiday request after conflict checks
	Request(ctx context.Context, req CreateHolidayRequest) (HolidayRequestResponse, error)

	// ListMine retrieves the authenticated employee's requests
	ListMine(ctx context.Context) (ListHolidayRequestsResponse, error)

	// Cancel cancels an unprocessed request owned by the caller
	Cancel(ctx context.Context, id string) error

	// WeekInfo derives the approved-holiday view for each weekday of the
	// given week. Days without holiday are present with zero values.
	WeekInfo(ctx context.Context, employeeCode, weekStart string) (map[string]DayInfo, error)

	// BankWeekInfo derives the bank-holiday view for each weekday of the
	// given week from the cached public feed.
	BankWeekInfo(ctx context.Context, region, weekStart string) (map[string]BankHolidayInfo, error)
}
