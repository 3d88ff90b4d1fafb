package holiday

import (
	"time"
)

type RequestStatus string

const (
	StatusWaitingApproval RequestStatus = "waiting_approval"
	StatusApproved        RequestStatus = "approved"
	StatusRejected        RequestStatus = "rejected"
	StatusCancelled       RequestStatus = "cancelled"
)

type HalfDayPeriod string

const (
	HalfDayMorning   HalfDayPeriod = "morning"
	HalfDayAfternoon HalfDayPeriod = "afternoon"
)

// HolidayRequest is an employee's absence request. Dates are ISO "2006-01-02"
// strings, inclusive on both ends.
type HolidayRequest struct {
	ID           string
	EmployeeCode string

	StartDate string
	EndDate   string

	HalfDay       bool
	HalfDayPeriod *HalfDayPeriod

	PaidStatus string // 'paid', 'unpaid'
	LeaveType  string // 'holiday', 'sick', 'other'
	Reason     *string

	Status          RequestStatus
	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectionReason *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Covers reports whether the request spans the given ISO date.
func (r HolidayRequest) Covers(date string) bool {
	return r.StartDate <= date && date <= r.EndDate
}

// HalfDayMeta is the single definition of half-day detection: a request
// counts as half-day on a date only when it is flagged half-day and covers
// exactly that one day. Both the request flow and the timesheet lock
// resolver use this, so the two never drift apart.
func (r HolidayRequest) HalfDayMeta(date string) (bool, string) {
	if !r.HalfDay || r.StartDate != r.EndDate || !r.Covers(date) {
		return false, ""
	}
	label := "Half day"
	if r.HalfDayPeriod != nil {
		switch *r.HalfDayPeriod {
		case HalfDayMorning:
			label = "Half day (AM)"
		case HalfDayAfternoon:
			label = "Half day (PM)"
		}
	}
	return true, label
}

// DayInfo is the per-day holiday view consumed by the timesheet engine.
type DayInfo struct {
	HasHoliday bool   `json:"has_holiday"`
	IsHalfDay  bool   `json:"is_half_day"`
	PaidStatus string `json:"paid_status,omitempty"`
	LeaveType  string `json:"leave_type,omitempty"`
	Label      string `json:"label,omitempty"`
}

// BankHoliday is one statutory public holiday from the external feed,
// cached per region.
type BankHoliday struct {
	Region string
	Date   string
	Title  string
}

// BankHolidayInfo is the per-day bank-holiday view consumed by the
// timesheet engine. A personal approved holiday on the same date always
// takes precedence.
type BankHolidayInfo struct {
	Name       string `json:"name"`
	NotWorking bool   `json:"not_working"`
}
