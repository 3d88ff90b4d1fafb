package holiday

import (
	"context"
)

// HolidayRequestRepository defines data access for holiday requests.
type HolidayRequestRepository interface {
	// Create creates a new holiday request
	Create(ctx context.Context, request HolidayRequest) (HolidayRequest, error)

	// GetByID retrieves a holiday request by ID
	GetByID(ctx context.Context, id string) (HolidayRequest, error)

	// ListByEmployee retrieves an employee's requests, newest first
	ListByEmployee(ctx context.Context, employeeCode string) ([]HolidayRequest, error)

	// GetApprovedInRange retrieves approved requests overlapping [from, to]
	// (ISO dates, inclusive). Used by the timesheet lock resolver.
	GetApprovedInRange(ctx context.Context, employeeCode, from, to string) ([]HolidayRequest, error)

	// GetPendingOrApprovedInRange retrieves non-rejected, non-cancelled
	// requests overlapping [from, to]. Used for conflict checks.
	GetPendingOrApprovedInRange(ctx context.Context, employeeCode, from, to string) ([]HolidayRequest, error)

	// UpdateStatus transitions a request's status
	UpdateStatus(ctx context.Context, id string, status RequestStatus, reason *string) error
}

// BankHolidayRepository caches the public holiday feed per region.
type BankHolidayRepository interface {
	// ReplaceRegion swaps the cached holidays for a region in one transaction
	ReplaceRegion(ctx context.Context, region string, holidays []BankHoliday) error

	// GetInRange retrieves cached holidays in [from, to] (ISO dates, inclusive)
	GetInRange(ctx context.Context, region, from, to string) ([]BankHoliday, error)
}
