package timesheet

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// DayMode tags the variant of a day entry. Exactly one mode is active per
// day; mode-irrelevant fields are cleared when the mode changes.
type DayMode string

const (
	ModeYard        DayMode = "yard"
	ModeTravel      DayMode = "travel"
	ModeOnset       DayMode = "onset"
	ModeOff         DayMode = "off"
	ModeHoliday     DayMode = "holiday"
	ModeBankHoliday DayMode = "bankholiday"
)

// Weekdays is the fixed, ordered key set of a timesheet week.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// DayIndex returns the 0-based offset of a weekday name within the week,
// or -1 for an unknown name.
func DayIndex(day string) int {
	for i, d := range Weekdays {
		if d == day {
			return i
		}
	}
	return -1
}

// Segment is one logged block of yard time.
type Segment struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// JobRef is a denormalized reference to a booking, captured on day entries
// and turnaround selections for reporting.
type JobRef struct {
	BookingID string `json:"booking_id"`
	JobNumber string `json:"job_number"`
	Client    string `json:"client,omitempty"`
	Location  string `json:"location,omitempty"`
	Date      string `json:"date,omitempty"`
}

// DayEntry is one employee's record for one calendar day within a week.
// LunchSup, TravelLunchSup and MealSup are pointers because their defaults
// depend on the day mode; nil means "not yet normalized".
type DayEntry struct {
	Mode DayMode `json:"mode"`

	// Yard
	YardSegments []Segment `json:"yard_segments,omitempty"`
	LunchSup     *bool     `json:"lunch_sup,omitempty"`

	// Travel / on-set times ("HH:MM" or absent)
	LeaveTime      *string `json:"leave_time,omitempty"`
	ArriveTime     *string `json:"arrive_time,omitempty"`
	CallTime       *string `json:"call_time,omitempty"`
	WrapTime       *string `json:"wrap_time,omitempty"`
	ArriveBack     *string `json:"arrive_back,omitempty"`
	PrecallMinutes *int    `json:"precall_minutes,omitempty"`

	TravelLunchSup *bool `json:"travel_lunch_sup,omitempty"`
	TravelPD       bool  `json:"travel_pd,omitempty"`
	MealSup        *bool `json:"meal_sup,omitempty"`
	NightShoot     bool  `json:"night_shoot,omitempty"`
	Overnight      bool  `json:"overnight,omitempty"`

	IsTurnaround  bool    `json:"is_turnaround,omitempty"`
	TurnaroundJob *JobRef `json:"turnaround_job,omitempty"`

	DayNotes string `json:"day_notes,omitempty"`

	// Derived annotations, owned by the lock resolver.
	HalfHoliday      bool   `json:"half_holiday,omitempty"`
	HalfHolidayLabel string `json:"half_holiday_label,omitempty"`

	// Stamped at save time.
	Date   string   `json:"date,omitempty"`
	Jobs   []JobRef `json:"jobs,omitempty"`
	HasJob bool     `json:"has_job,omitempty"`
}

// DayMap maps weekday names to day entries and is stored as JSONB.
type DayMap map[string]DayEntry

// Value implements driver.Valuer for database storage
func (d DayMap) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil
	}
	return json.Marshal(d)
}

// Scan implements sql.Scanner for database retrieval
func (d *DayMap) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan DayMap: invalid type")
	}

	return json.Unmarshal(bytes, d)
}

// CreditAudit is the turnaround credit snapshot attached to a timesheet at
// save/submit time.
type CreditAudit struct {
	Total       int      `json:"total"`
	SourceDates []string `json:"source_dates"`
}

// Value implements driver.Valuer for database storage
func (c CreditAudit) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Scan implements sql.Scanner for database retrieval
func (c *CreditAudit) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan CreditAudit: invalid type")
	}

	return json.Unmarshal(bytes, c)
}

type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
	StatusApproved  Status = "approved"
)

// IsApproved treats approved as the terminal, fully locked state.
func (s Status) IsApproved() bool {
	return s == StatusApproved
}

// Timesheet is one employee's week, keyed (employee code, ISO week start).
type Timesheet struct {
	ID           string
	EmployeeCode string
	WeekStart    string
	Days         DayMap
	Status       Status
	Submitted    bool
	SubmittedAt  *time.Time

	TurnaroundCredits *CreditAudit

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Key returns the document key for this week.
func (t Timesheet) Key() string {
	return t.EmployeeCode + "_" + t.WeekStart
}

// NewWeek creates an empty week with all seven days present. Weekdays start
// as yard days, the weekend starts off.
func NewWeek(employeeCode, weekStart string) Timesheet {
	return Timesheet{
		EmployeeCode: employeeCode,
		WeekStart:    weekStart,
		Days:         FillMissingDays(nil),
		Status:       StatusDraft,
	}
}

// FillMissingDays returns a fresh day map with all seven weekdays present,
// populating any day absent from the input with the new-week default for
// that slot. A partial client payload therefore never invents work time on
// days it left out.
func FillMissingDays(days DayMap) DayMap {
	filled := make(DayMap, len(Weekdays))
	for i, day := range Weekdays {
		if entry, ok := days[day]; ok {
			filled[day] = entry
			continue
		}
		mode := ModeYard
		if i >= 5 {
			mode = ModeOff
		}
		filled[day] = DayEntry{Mode: mode}
	}
	return filled
}

// MondayOf returns the Monday on or before t.
func MondayOf(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -offset)
}

// WeekDates expands an ISO week start into the seven dates of that week.
// A malformed week start yields empty dates rather than an error.
func WeekDates(weekStart string) []string {
	start, err := time.Parse("2006-01-02", weekStart)
	if err != nil {
		return make([]string, len(Weekdays))
	}
	dates := make([]string, len(Weekdays))
	for i := range Weekdays {
		dates[i] = start.AddDate(0, 0, i).Format("2006-01-02")
	}
	return dates
}

// DateFor returns the ISO date of the named weekday within the week, or ""
// for an unknown day or malformed week start.
func DateFor(weekStart, day string) string {
	i := DayIndex(day)
	if i < 0 {
		return ""
	}
	return WeekDates(weekStart)[i]
}

// WeekSummary is the read-only fold of a week's day entries.
type WeekSummary struct {
	TotalMinutes   int            `json:"total_minutes"`
	TotalFormatted string         `json:"total_formatted"`
	DayMinutes     map[string]int `json:"day_minutes"`

	YardMinutes   int `json:"yard_minutes"`
	TravelMinutes int `json:"travel_minutes"`
	OnsetMinutes  int `json:"onset_minutes"`

	YardDays        int `json:"yard_days"`
	TravelDays      int `json:"travel_days"`
	OnsetDays       int `json:"onset_days"`
	OffDays         int `json:"off_days"`
	HolidayDays     int `json:"holiday_days"`
	HalfHolidayDays int `json:"half_holiday_days"`
	BankHolidayDays int `json:"bank_holiday_days"`

	LunchCount       int `json:"lunch_count"`
	TravelLunchCount int `json:"travel_lunch_count"`
	MealSupCount     int `json:"meal_sup_count"`
	TravelPDCount    int `json:"travel_pd_count"`
	NightShootCount  int `json:"night_shoot_count"`
	OvernightCount   int `json:"overnight_count"`
	TurnaroundCount  int `json:"turnaround_count"`
}
