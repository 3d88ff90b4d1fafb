package booking

import (
	"context"
)

// BookingService defines business logic for job assignments.
type BookingService interface {
	// MyWeek retrieves the authenticated employee's assignments for a week
	MyWeek(ctx context.Context, req WeekBookingsRequest) (WeekBookingsResponse, error)
}
