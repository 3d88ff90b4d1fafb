package holiday

import "errors"

// Holiday domain errors
var (
	ErrRequestNotFound         = errors.New("holiday request not found")
	ErrRequestAlreadyProcessed = errors.New("holiday request has already been approved or rejected")
	ErrRequestOverlapsBooking  = errors.New("requested dates overlap an existing job assignment")
	ErrRequestOverlapsHoliday  = errors.New("requested dates overlap an existing holiday request")
	ErrUnauthorized            = errors.New("unauthorized to access this holiday request")
)
