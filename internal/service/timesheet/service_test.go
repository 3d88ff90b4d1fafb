package timesheet

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewdesk/crew-backend-go/internal/domain/auth"
	"github.com/crewdesk/crew-backend-go/internal/domain/booking"
	"github.com/crewdesk/crew-backend-go/internal/domain/employee"
	"github.com/crewdesk/crew-backend-go/internal/domain/holiday"
	"github.com/crewdesk/crew-backend-go/internal/domain/notification"
	"github.com/crewdesk/crew-backend-go/internal/domain/timesheet"
)

type stubTimesheetRepo struct {
	lookback []timesheet.Timesheet
}

func (r *stubTimesheetRepo) GetByKey(ctx context.Context, employeeCode, weekStart string) (timesheet.Timesheet, error) {
	return timesheet.Timesheet{}, pgx.ErrNoRows
}

func (r *stubTimesheetRepo) GetByWeekStarts(ctx context.Context, employeeCode string, weekStarts []string) ([]timesheet.Timesheet, error) {
	return r.lookback, nil
}

func (r *stubTimesheetRepo) GetStatusForUpdate(ctx context.Context, employeeCode, weekStart string) (timesheet.Status, error) {
	return "", pgx.ErrNoRows
}

func (r *stubTimesheetRepo) Upsert(ctx context.Context, ts timesheet.Timesheet) (timesheet.Timesheet, error) {
	return ts, nil
}

type stubBookingRepo struct{}

func (r *stubBookingRepo) GetByID(ctx context.Context, id string) (booking.Booking, error) {
	return booking.Booking{}, booking.ErrBookingNotFound
}

func (r *stubBookingRepo) GetAssignments(ctx context.Context, employeeCode, from, to string) ([]booking.Booking, error) {
	return nil, nil
}

type stubEmployeeRepo struct{}

func (r *stubEmployeeRepo) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	return employee.Employee{Code: code}, nil
}

func (r *stubEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

type stubHolidayService struct {
	week map[string]holiday.DayInfo
	bank map[string]holiday.BankHolidayInfo
}

func (s *stubHolidayService) Request(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayRequestResponse, error) {
	return holiday.HolidayRequestResponse{}, nil
}

func (s *stubHolidayService) ListMine(ctx context.Context) (holiday.ListHolidayRequestsResponse, error) {
	return holiday.ListHolidayRequestsResponse{}, nil
}

func (s *stubHolidayService) Cancel(ctx context.Context, id string) error {
	return nil
}

func (s *stubHolidayService) WeekInfo(ctx context.Context, employeeCode, weekStart string) (map[string]holiday.DayInfo, error) {
	return s.week, nil
}

func (s *stubHolidayService) BankWeekInfo(ctx context.Context, region, weekStart string) (map[string]holiday.BankHolidayInfo, error) {
	return s.bank, nil
}

type stubNotificationService struct {
	keys []string
}

func (s *stubNotificationService) Notify(ctx context.Context, employeeCode, title, body string, data notification.Data, idempotencyKey string) error {
	s.keys = append(s.keys, idempotencyKey)
	return nil
}

func (s *stubNotificationService) ListMine(ctx context.Context) ([]notification.Notification, error) {
	return nil, nil
}

func (s *stubNotificationService) MarkRead(ctx context.Context, id string) error {
	return nil
}

func newStubService(repo *stubTimesheetRepo) *TimesheetServiceImpl {
	normalizer := NewNormalizer()
	return &TimesheetServiceImpl{
		TimesheetRepository: repo,
		BookingRepository:   &stubBookingRepo{},
		EmployeeRepository:  &stubEmployeeRepo{},
		holidayService:      &stubHolidayService{},
		notificationService: &stubNotificationService{},
		normalizer:          normalizer,
		locks:               NewLockResolver(normalizer),
		ledger:              NewCreditLedger(),
		summarizer:          NewSummarizer(),
		assembler:           NewAssembler(normalizer),
		now: func() time.Time {
			return time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
		},
	}
}

func authedContext(t *testing.T, employeeCode string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret-key-for-jwt"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"employee_id":   "emp-1",
		"employee_code": employeeCode,
		"name":          "Alex Mercer",
		"type":          "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func serviceTestPayload() timesheet.WeekPayload {
	ts := timesheet.NewWeek("AB1234", "2026-08-24")
	return timesheet.WeekPayload{
		WeekStart: ts.WeekStart,
		Days:      ts.Days,
		Status:    ts.Status,
	}
}

func TestService_UpdateDayRequiresIdentity(t *testing.T) {
	s := newStubService(&stubTimesheetRepo{})

	_, err := s.UpdateDay(context.Background(), timesheet.UpdateDayRequest{
		Week:  serviceTestPayload(),
		Day:   "Monday",
		Entry: timesheet.DayEntry{Mode: timesheet.ModeYard},
	})

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestService_UpdateDayRefusesApprovedWeek(t *testing.T) {
	s := newStubService(&stubTimesheetRepo{})
	week := serviceTestPayload()
	week.Status = timesheet.StatusApproved

	_, err := s.UpdateDay(authedContext(t, "AB1234"), timesheet.UpdateDayRequest{
		Week:  week,
		Day:   "Monday",
		Entry: timesheet.DayEntry{Mode: timesheet.ModeTravel},
	})

	assert.ErrorIs(t, err, timesheet.ErrTimesheetLocked)
}

func TestService_UpdateDayUnknownDay(t *testing.T) {
	s := newStubService(&stubTimesheetRepo{})

	_, err := s.UpdateDay(authedContext(t, "AB1234"), timesheet.UpdateDayRequest{
		Week:  serviceTestPayload(),
		Day:   "Someday",
		Entry: timesheet.DayEntry{Mode: timesheet.ModeYard},
	})

	assert.ErrorIs(t, err, timesheet.ErrUnknownDay)
}

func TestService_UpdateDayFillsAbsentDays(t *testing.T) {
	s := newStubService(&stubTimesheetRepo{})

	// A client posting only the weekdays must not grow work time on the
	// days it left out.
	week := timesheet.WeekPayload{
		WeekStart: "2026-08-24",
		Days: timesheet.DayMap{
			"Monday":    {Mode: timesheet.ModeYard},
			"Tuesday":   {Mode: timesheet.ModeYard},
			"Wednesday": {Mode: timesheet.ModeYard},
			"Thursday":  {Mode: timesheet.ModeYard},
			"Friday":    {Mode: timesheet.ModeYard},
		},
	}

	resp, err := s.UpdateDay(authedContext(t, "AB1234"), timesheet.UpdateDayRequest{
		Week:  week,
		Day:   "Monday",
		Entry: timesheet.DayEntry{Mode: timesheet.ModeYard},
	})
	require.NoError(t, err)

	require.Len(t, resp.Days, 7)
	assert.Equal(t, timesheet.ModeOff, resp.Days["Saturday"].Mode)
	assert.Equal(t, timesheet.ModeOff, resp.Days["Sunday"].Mode)
	assert.Zero(t, resp.Summary.DayMinutes["Saturday"])
	assert.Zero(t, resp.Summary.DayMinutes["Sunday"])
}

func TestService_ToggleTurnaroundRejectedWithoutCredits(t *testing.T) {
	// No saved weeks in the lookback, so no credits were ever earned.
	s := newStubService(&stubTimesheetRepo{})

	resp, err := s.ToggleTurnaround(authedContext(t, "AB1234"), timesheet.ToggleTurnaroundRequest{
		Week:   serviceTestPayload(),
		Day:    "Monday",
		Enable: true,
	})
	require.NoError(t, err)

	assert.False(t, resp.Accepted)
	assert.NotEmpty(t, resp.Reason)
	assert.False(t, resp.Week.Days["Monday"].IsTurnaround, "a rejected toggle leaves the week unchanged")
	assert.Equal(t, 0, resp.Week.Credits.Total)
}

func TestService_ToggleTurnaroundAcceptedWithCredit(t *testing.T) {
	earned := timesheet.NewWeek("AB1234", "2026-08-17")
	entry := earned.Days["Tuesday"]
	entry.DayNotes = "Night shoot at the quarry"
	earned.Days["Tuesday"] = entry

	s := newStubService(&stubTimesheetRepo{lookback: []timesheet.Timesheet{earned}})

	resp, err := s.ToggleTurnaround(authedContext(t, "AB1234"), timesheet.ToggleTurnaroundRequest{
		Week:   serviceTestPayload(),
		Day:    "Monday",
		Enable: true,
	})
	require.NoError(t, err)

	assert.True(t, resp.Accepted)
	assert.Empty(t, resp.Reason)
	monday := resp.Week.Days["Monday"]
	assert.True(t, monday.IsTurnaround)
	assert.Empty(t, monday.YardSegments)
	assert.Equal(t, 1, resp.Week.Credits.Total)
}

func TestService_ToggleTurnaroundOffAlwaysAllowed(t *testing.T) {
	s := newStubService(&stubTimesheetRepo{})
	week := serviceTestPayload()
	monday := week.Days["Monday"]
	monday.IsTurnaround = true
	monday.TurnaroundJob = &timesheet.JobRef{BookingID: "b1", JobNumber: "J-104"}
	week.Days["Monday"] = monday

	resp, err := s.ToggleTurnaround(authedContext(t, "AB1234"), timesheet.ToggleTurnaroundRequest{
		Week:   week,
		Day:    "Monday",
		Enable: false,
	})
	require.NoError(t, err)

	assert.True(t, resp.Accepted)
	got := resp.Week.Days["Monday"]
	assert.False(t, got.IsTurnaround)
	assert.Nil(t, got.TurnaroundJob)
}
