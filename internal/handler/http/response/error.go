package response

import (
	"errors"
	"net/http"

	"github.com/crewdesk/crew-backend-go/internal/domain/auth"
	"github.com/crewdesk/crew-backend-go/internal/domain/booking"
	"github.com/crewdesk/crew-backend-go/internal/domain/employee"
	"github.com/crewdesk/crew-backend-go/internal/domain/holiday"
	"github.com/crewdesk/crew-backend-go/internal/domain/timesheet"
	"github.com/crewdesk/crew-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is inactive")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Forbidden(w, "Employee is inactive")

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrTimesheetLocked):
		Conflict(w, "Timesheet has been approved and can no longer be changed")
	case errors.Is(err, timesheet.ErrDayLocked):
		Conflict(w, "Day is locked by an approved holiday")
	case errors.Is(err, timesheet.ErrUnknownDay):
		BadRequest(w, "Unknown weekday name", nil)
	case errors.Is(err, timesheet.ErrTurnaroundCreditExceeded):
		Conflict(w, "No turnaround credits available")
	case errors.Is(err, timesheet.ErrTurnaroundNotYardDay):
		BadRequest(w, "Turnaround only applies to yard days", nil)

	// Holiday domain errors
	case errors.Is(err, holiday.ErrRequestNotFound):
		NotFound(w, "Holiday request not found")
	case errors.Is(err, holiday.ErrRequestAlreadyProcessed):
		Conflict(w, "Holiday request already processed")
	case errors.Is(err, holiday.ErrRequestOverlapsBooking):
		Conflict(w, "Holiday request overlaps an existing booking")
	case errors.Is(err, holiday.ErrRequestOverlapsHoliday):
		Conflict(w, "Holiday request overlaps an existing request")
	case errors.Is(err, holiday.ErrUnauthorized):
		Forbidden(w, "Not allowed to modify this request")

	// Booking domain errors
	case errors.Is(err, booking.ErrBookingNotFound):
		NotFound(w, "Booking not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
