package booking

import (
	"context"
)

// BookingRepository defines data access for job assignments.
type BookingRepository interface {
	// GetByID retrieves a booking by ID
	GetByID(ctx context.Context, id string) (Booking, error)

	// GetAssignments retrieves an employee's bookings with dates in
	// [from, to] (ISO dates, inclusive), ordered by date.
	GetAssignments(ctx context.Context, employeeCode, from, to string) ([]Booking, error)
}
