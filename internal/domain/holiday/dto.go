package holiday

import (
	"github.com/crewdesk/crew-backend-go/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	HalfDay       bool    `json:"half_day"`
	HalfDayPeriod *string `json:"half_day_period,omitempty"`
	PaidStatus    string  `json:"paid_status"`
	LeaveType     string  `json:"leave_type"`
	Reason        *string `json:"reason,omitempty"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date (YYYY-MM-DD)",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date (YYYY-MM-DD)",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if r.HalfDay && r.StartDate != r.EndDate {
		errs = append(errs, validator.ValidationError{
			Field:   "half_day",
			Message: "half_day requests must cover a single day",
		})
	}

	if r.HalfDayPeriod != nil && !validator.IsInSlice(*r.HalfDayPeriod, []string{string(HalfDayMorning), string(HalfDayAfternoon)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "half_day_period",
			Message: "half_day_period must be 'morning' or 'afternoon'",
		})
	}

	if !validator.IsInSlice(r.PaidStatus, []string{"paid", "unpaid"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "paid_status",
			Message: "paid_status must be 'paid' or 'unpaid'",
		})
	}

	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type HolidayRequestResponse struct {
	ID            string  `json:"id"`
	EmployeeCode  string  `json:"employee_code"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	HalfDay       bool    `json:"half_day"`
	HalfDayPeriod *string `json:"half_day_period,omitempty"`
	PaidStatus    string  `json:"paid_status"`
	LeaveType     string  `json:"leave_type"`
	Reason        *string `json:"reason,omitempty"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
}

type ListHolidayRequestsResponse struct {
	Requests []HolidayRequestResponse `json:"requests"`
}
