package booking

import "errors"

// Booking domain errors
var (
	ErrBookingNotFound = errors.New("booking not found")
)
