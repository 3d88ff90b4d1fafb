package booking

import (
	"time"
)

// Booking is one employee's job assignment on one calendar date.
type Booking struct {
	ID           string
	EmployeeCode string

	JobNumber string
	Client    string
	Location  string

	// Date is the assignment date, ISO "2006-01-02".
	Date string

	CallTime *string
	Notes    *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
