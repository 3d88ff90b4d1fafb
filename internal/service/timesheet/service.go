package timesheet

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/crewdesk/crew-backend-go/internal/domain/auth"
	"github.com/crewdesk/crew-backend-go/internal/domain/booking"
	"github.com/crewdesk/crew-backend-go/internal/domain/employee"
	"github.com/crewdesk/crew-backend-go/internal/domain/holiday"
	"github.com/crewdesk/crew-backend-go/internal/domain/notification"
	"github.com/crewdesk/crew-backend-go/internal/domain/timesheet"
	"github.com/crewdesk/crew-backend-go/internal/pkg/database"
	"github.com/crewdesk/crew-backend-go/internal/pkg/jwt"
	"github.com/crewdesk/crew-backend-go/internal/repository/postgresql"
)

// TimesheetServiceImpl orchestrates the week engine: load, lock resolution,
// credit position, summary fold and the save/submit write path. Holiday and
// booking lookups degrade to empty views on failure so the week stays
// readable; credit lookback failures are fatal because they guard a spend.
type TimesheetServiceImpl struct {
	db *database.DB
	timesheet.TimesheetRepository
	booking.BookingRepository
	employee.EmployeeRepository
	holidayService      holiday.HolidayService
	notificationService notification.NotificationService

	normalizer *Normalizer
	locks      *LockResolver
	ledger     *CreditLedger
	summarizer *Summarizer
	assembler  *Assembler

	now func() time.Time
}

func NewTimesheetService(
	db *database.DB,
	timesheetRepository timesheet.TimesheetRepository,
	bookingRepository booking.BookingRepository,
	employeeRepository employee.EmployeeRepository,
	holidayService holiday.HolidayService,
	notificationService notification.NotificationService,
) *TimesheetServiceImpl {
	normalizer := NewNormalizer()
	return &TimesheetServiceImpl{
		db:                  db,
		TimesheetRepository: timesheetRepository,
		BookingRepository:   bookingRepository,
		EmployeeRepository:  employeeRepository,
		holidayService:      holidayService,
		notificationService: notificationService,
		normalizer:          normalizer,
		locks:               NewLockResolver(normalizer),
		ledger:              NewCreditLedger(),
		summarizer:          NewSummarizer(),
		assembler:           NewAssembler(normalizer),
		now:                 time.Now,
	}
}

// GetWeek implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) GetWeek(ctx context.Context, req timesheet.GetWeekRequest) (timesheet.WeekResponse, error) {
	code := jwt.EmployeeCodeFromContext(ctx)
	if code == "" {
		return timesheet.WeekResponse{}, auth.ErrInvalidToken
	}
	if err := req.Validate(); err != nil {
		return timesheet.WeekResponse{}, err
	}

	ts, err := s.TimesheetRepository.GetByKey(ctx, code, req.WeekStart)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return timesheet.WeekResponse{}, fmt.Errorf("failed to get timesheet: %w", err)
		}
		ts = timesheet.NewWeek(code, req.WeekStart)
	}

	hol, bank := s.holidayViews(ctx, code, req.WeekStart)
	ts = s.locks.Apply(ts, hol, bank)

	audit, err := s.creditPosition(ctx, code)
	if err != nil {
		return timesheet.WeekResponse{}, err
	}

	return s.buildResponse(ts, hol, bank, audit), nil
}

// UpdateDay implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) UpdateDay(ctx context.Context, req timesheet.UpdateDayRequest) (timesheet.WeekResponse, error) {
	code := jwt.EmployeeCodeFromContext(ctx)
	if code == "" {
		return timesheet.WeekResponse{}, auth.ErrInvalidToken
	}
	if err := req.Validate(); err != nil {
		return timesheet.WeekResponse{}, err
	}
	if timesheet.DayIndex(req.Day) < 0 {
		return timesheet.WeekResponse{}, timesheet.ErrUnknownDay
	}
	if req.Week.Status.IsApproved() {
		return timesheet.WeekResponse{}, timesheet.ErrTimesheetLocked
	}

	hol, bank := s.holidayViews(ctx, code, req.Week.WeekStart)
	if dayIsLocked(req.Day, hol, bank) {
		return timesheet.WeekResponse{}, timesheet.ErrDayLocked
	}

	ts := weekFromPayload(code, req.Week)
	ts.Days[req.Day] = s.normalizer.Normalize(req.Entry)
	ts = s.locks.Apply(ts, hol, bank)

	audit, err := s.creditPosition(ctx, code)
	if err != nil {
		return timesheet.WeekResponse{}, err
	}

	return s.buildResponse(ts, hol, bank, audit), nil
}

// ToggleTurnaround implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ToggleTurnaround(ctx context.Context, req timesheet.ToggleTurnaroundRequest) (timesheet.ToggleTurnaroundResponse, error) {
	code := jwt.EmployeeCodeFromContext(ctx)
	if code == "" {
		return timesheet.ToggleTurnaroundResponse{}, auth.ErrInvalidToken
	}
	if err := req.Validate(); err != nil {
		return timesheet.ToggleTurnaroundResponse{}, err
	}
	if timesheet.DayIndex(req.Day) < 0 {
		return timesheet.ToggleTurnaroundResponse{}, timesheet.ErrUnknownDay
	}
	if req.Week.Status.IsApproved() {
		return timesheet.ToggleTurnaroundResponse{}, timesheet.ErrTimesheetLocked
	}

	hol, bank := s.holidayViews(ctx, code, req.Week.WeekStart)
	if dayIsLocked(req.Day, hol, bank) {
		return timesheet.ToggleTurnaroundResponse{}, timesheet.ErrDayLocked
	}

	ts := weekFromPayload(code, req.Week)
	entry := s.normalizer.Normalize(ts.Days[req.Day])
	if entry.Mode != timesheet.ModeYard {
		return timesheet.ToggleTurnaroundResponse{}, timesheet.ErrTurnaroundNotYardDay
	}

	audit, err := s.creditPosition(ctx, code)
	if err != nil {
		return timesheet.ToggleTurnaroundResponse{}, err
	}

	if req.Enable {
		if entry.IsTurnaround {
			// Already on; nothing to spend.
			ts = s.locks.Apply(ts, hol, bank)
			return timesheet.ToggleTurnaroundResponse{Accepted: true, Week: s.buildResponse(ts, hol, bank, audit)}, nil
		}
		if !s.ledger.CanEnable(ts, audit) {
			// Rejection is a normal outcome; the week comes back unchanged.
			ts = s.locks.Apply(ts, hol, bank)
			return timesheet.ToggleTurnaroundResponse{
				Accepted: false,
				Reason:   "no turnaround credits available in the last 14 days",
				Week:     s.buildResponse(ts, hol, bank, audit),
			}, nil
		}
		entry.IsTurnaround = true
		entry.YardSegments = []timesheet.Segment{}
	} else {
		entry.IsTurnaround = false
		entry.TurnaroundJob = nil
		entry.YardSegments = nil
	}

	ts.Days[req.Day] = s.normalizer.Normalize(entry)
	ts = s.locks.Apply(ts, hol, bank)

	return timesheet.ToggleTurnaroundResponse{Accepted: true, Week: s.buildResponse(ts, hol, bank, audit)}, nil
}

// SaveWeek implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) SaveWeek(ctx context.Context, req timesheet.SaveWeekRequest) (timesheet.WeekResponse, error) {
	return s.persistWeek(ctx, req, false)
}

// SubmitWeek implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) SubmitWeek(ctx context.Context, req timesheet.SaveWeekRequest) (timesheet.WeekResponse, error) {
	return s.persistWeek(ctx, req, true)
}

func (s *TimesheetServiceImpl) persistWeek(ctx context.Context, req timesheet.SaveWeekRequest, submit bool) (timesheet.WeekResponse, error) {
	code := jwt.EmployeeCodeFromContext(ctx)
	if code == "" {
		return timesheet.WeekResponse{}, auth.ErrInvalidToken
	}
	if err := req.Validate(); err != nil {
		return timesheet.WeekResponse{}, err
	}

	hol, bank := s.holidayViews(ctx, code, req.WeekStart)

	ts := timesheet.Timesheet{
		EmployeeCode: code,
		WeekStart:    req.WeekStart,
		Days:         timesheet.FillMissingDays(req.Days),
		Status:       timesheet.StatusDraft,
	}
	ts = s.locks.Apply(ts, hol, bank)

	audit, err := s.creditPosition(ctx, code)
	if err != nil {
		return timesheet.WeekResponse{}, err
	}

	assembled, err := s.assembler.Prepare(ts, s.weekJobs(ctx, code, req.WeekStart), audit)
	if err != nil {
		return timesheet.WeekResponse{}, err
	}

	var saved timesheet.Timesheet
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		stored, err := s.TimesheetRepository.GetStatusForUpdate(txCtx, code, req.WeekStart)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("failed to check timesheet status: %w", err)
		}
		if stored.IsApproved() {
			return timesheet.ErrTimesheetLocked
		}

		if submit {
			submittedAt := s.now()
			assembled.Status = timesheet.StatusSubmitted
			assembled.Submitted = true
			assembled.SubmittedAt = &submittedAt
		} else if stored == timesheet.StatusSubmitted {
			// Re-saving a submitted week keeps it in the approval queue.
			assembled.Status = timesheet.StatusSubmitted
			assembled.Submitted = true
		}

		saved, err = s.TimesheetRepository.Upsert(txCtx, assembled)
		if err != nil {
			return fmt.Errorf("failed to upsert timesheet: %w", err)
		}
		return nil
	})
	if err != nil {
		return timesheet.WeekResponse{}, err
	}

	if submit {
		key := code + "_" + req.WeekStart + "_submitted"
		body := "Timesheet for week starting " + req.WeekStart + " has been submitted."
		data := notification.Data{"week_start": req.WeekStart, "event": "timesheet_submitted"}
		if err := s.notificationService.Notify(ctx, code, "Timesheet submitted", body, data, key); err != nil {
			slog.Warn("failed to send submission notification", "employee_code", code, "week_start", req.WeekStart, "error", err)
		}
	}

	return s.buildResponse(saved, hol, bank, audit), nil
}

// holidayViews loads the holiday and bank-holiday week views. Either lookup
// failing degrades to an empty view so the week stays usable offline from
// those sources.
func (s *TimesheetServiceImpl) holidayViews(ctx context.Context, code, weekStart string) (map[string]holiday.DayInfo, map[string]holiday.BankHolidayInfo) {
	hol, err := s.holidayService.WeekInfo(ctx, code, weekStart)
	if err != nil {
		slog.Warn("failed to load holiday week info", "employee_code", code, "week_start", weekStart, "error", err)
		hol = map[string]holiday.DayInfo{}
	}

	region := ""
	emp, err := s.EmployeeRepository.GetByCode(ctx, code)
	if err != nil {
		slog.Warn("failed to load employee for bank holiday region", "employee_code", code, "error", err)
	} else {
		region = emp.Region
	}

	bank := map[string]holiday.BankHolidayInfo{}
	if region != "" {
		bank, err = s.holidayService.BankWeekInfo(ctx, region, weekStart)
		if err != nil {
			slog.Warn("failed to load bank holiday week info", "region", region, "week_start", weekStart, "error", err)
			bank = map[string]holiday.BankHolidayInfo{}
		}
	}

	return hol, bank
}

// creditPosition computes the turnaround credit audit over the trailing
// lookback. A storage failure here is fatal because the result gates spends.
func (s *TimesheetServiceImpl) creditPosition(ctx context.Context, code string) (timesheet.CreditAudit, error) {
	today := s.now()
	weeks, err := s.TimesheetRepository.GetByWeekStarts(ctx, code, s.ledger.LookbackWeekStarts(today))
	if err != nil {
		return timesheet.CreditAudit{}, fmt.Errorf("failed to load credit lookback weeks: %w", err)
	}
	return s.ledger.Compute(weeks, today), nil
}

// weekJobs maps the employee's bookings in the week to job stamps by date.
func (s *TimesheetServiceImpl) weekJobs(ctx context.Context, code, weekStart string) map[string][]timesheet.JobRef {
	dates := timesheet.WeekDates(weekStart)
	bookings, err := s.BookingRepository.GetAssignments(ctx, code, dates[0], dates[len(dates)-1])
	if err != nil {
		slog.Warn("failed to load week bookings", "employee_code", code, "week_start", weekStart, "error", err)
		return map[string][]timesheet.JobRef{}
	}

	jobs := make(map[string][]timesheet.JobRef, len(bookings))
	for _, b := range bookings {
		jobs[b.Date] = append(jobs[b.Date], timesheet.JobRef{
			BookingID: b.ID,
			JobNumber: b.JobNumber,
			Client:    b.Client,
			Location:  b.Location,
			Date:      b.Date,
		})
	}
	return jobs
}

func (s *TimesheetServiceImpl) buildResponse(ts timesheet.Timesheet, hol map[string]holiday.DayInfo, bank map[string]holiday.BankHolidayInfo, audit timesheet.CreditAudit) timesheet.WeekResponse {
	var submittedAt *string
	if ts.SubmittedAt != nil {
		v := ts.SubmittedAt.Format(time.RFC3339)
		submittedAt = &v
	}

	return timesheet.WeekResponse{
		EmployeeCode:   ts.EmployeeCode,
		WeekStart:      ts.WeekStart,
		Days:           ts.Days,
		Status:         ts.Status,
		Submitted:      ts.Submitted,
		SubmittedAt:    submittedAt,
		Summary:        s.summarizer.Summarize(ts, hol, bank),
		Credits:        audit,
		TurnaroundUsed: s.ledger.UsedThisWeek(ts),
		Holidays:       hol,
		BankHolidays:   bank,
	}
}

// weekFromPayload lifts the client-held week state into a timesheet value.
// Absent days are filled with new-week defaults and the day map is copied,
// so the request payload is never mutated.
func weekFromPayload(code string, p timesheet.WeekPayload) timesheet.Timesheet {
	return timesheet.Timesheet{
		EmployeeCode: code,
		WeekStart:    p.WeekStart,
		Days:         timesheet.FillMissingDays(p.Days),
		Status:       p.Status,
		Submitted:    p.Submitted,
	}
}

// dayIsLocked reports whether the named day is owned by the lock resolver:
// a full personal holiday, or a non-working bank holiday with no personal
// holiday on top.
func dayIsLocked(day string, hol map[string]holiday.DayInfo, bank map[string]holiday.BankHolidayInfo) bool {
	h := hol[day]
	if h.HasHoliday && !h.IsHalfDay {
		return true
	}
	return bank[day].NotWorking && !h.HasHoliday
}
