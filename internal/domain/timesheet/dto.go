package timesheet

import (
	"github.com/crewdesk/crew-backend-go/internal/domain/holiday"
	"github.com/crewdesk/crew-backend-go/internal/pkg/validator"
)

type GetWeekRequest struct {
	WeekStart string `json:"week_start"`
}

func (r *GetWeekRequest) Validate() error {
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

// WeekPayload is the client-held week state echoed back on edit calls.
// Edits are pure transforms over this state; nothing is persisted until
// save or submit.
type WeekPayload struct {
	WeekStart string `json:"week_start"`
	Days      DayMap `json:"days"`
	Status    Status `json:"status,omitempty"`
	Submitted bool   `json:"submitted,omitempty"`
}

func (p *WeekPayload) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsWeekStart(p.WeekStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "week_start",
			Message: "week_start must be a valid date falling on a Monday",
		})
	}

	for day := range p.Days {
		if DayIndex(day) < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "days",
				Message: "unknown weekday name: " + day,
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateDayRequest struct {
	Week  WeekPayload `json:"week"`
	Day   string      `json:"day"`
	Entry DayEntry    `json:"entry"`
}

// Validate checks the embedded week payload; the day name itself is
// resolved by the service, which reports ErrUnknownDay.
func (r *UpdateDayRequest) Validate() error {
	return r.Week.Validate()
}

type ToggleTurnaroundRequest struct {
	Week   WeekPayload `json:"week"`
	Day    string      `json:"day"`
	Enable bool        `json:"enable"`
}

// Validate checks the embedded week payload; the day name itself is
// resolved by the service, which reports ErrUnknownDay.
func (r *ToggleTurnaroundRequest) Validate() error {
	return r.Week.Validate()
}

type SaveWeekRequest struct {
	WeekStart string `json:"week_start"`
	Days      DayMap `json:"days"`
}

func (r *SaveWeekRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsWeekStart(r.WeekStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "week_start",
			Message: "week_start must be a valid date falling on a Monday",
		})
	}

	for day := range r.Days {
		if DayIndex(day) < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "days",
				Message: "unknown weekday name: " + day,
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// WeekResponse carries the resolved week state plus everything the app
// renders next to it: the summary fold, the turnaround credit position and
// the holiday views the lock resolver applied.
type WeekResponse struct {
	EmployeeCode string  `json:"employee_code"`
	WeekStart    string  `json:"week_start"`
	Days         DayMap  `json:"days"`
	Status       Status  `json:"status"`
	Submitted    bool    `json:"submitted"`
	SubmittedAt  *string `json:"submitted_at,omitempty"`

	Summary        WeekSummary `json:"summary"`
	Credits        CreditAudit `json:"credits"`
	TurnaroundUsed int         `json:"turnaround_used"`

	Holidays     map[string]holiday.DayInfo         `json:"holidays"`
	BankHolidays map[string]holiday.BankHolidayInfo `json:"bank_holidays"`
}

type ToggleTurnaroundResponse struct {
	Accepted bool         `json:"accepted"`
	Reason   string       `json:"reason,omitempty"`
	Week     WeekResponse `json:"week"`
}
