package booking

import (
	"github.com/crewdesk/crew-backend-go/internal/pkg/validator"
)

type WeekBookingsRequest struct {
	WeekStart string `json:"week_start"`
}

func (r *WeekBookingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsWeekStart(r.WeekStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "week_start",
			Message: "week_start must be a valid date falling on a Monday",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type BookingResponse struct {
	ID        string  `json:"id"`
	JobNumber string  `json:"job_number"`
	Client    string  `json:"client"`
	Location  string  `json:"location"`
	Date      string  `json:"date"`
	CallTime  *string `json:"call_time,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// WeekBookingsResponse groups an employee's assignments by ISO date.
type WeekBookingsResponse struct {
	WeekStart string                       `json:"week_start"`
	ByDate    map[string][]BookingResponse `json:"by_date"`
}
