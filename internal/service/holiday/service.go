package holiday

import (
	"context"
	"fmt"
	"time"

	"github.com/crewdesk/crew-backend-go/internal/domain/auth"
	"github.com/crewdesk/crew-backend-go/internal/domain/booking"
	"github.com/crewdesk/crew-backend-go/internal/domain/holiday"
	"github.com/crewdesk/crew-backend-go/internal/domain/timesheet"
	"github.com/crewdesk/crew-backend-go/internal/pkg/jwt"
)

// HolidayServiceImpl manages holiday requests and derives the per-week
// holiday views the timesheet engine consumes.
type HolidayServiceImpl struct {
	holiday.HolidayRequestRepository
	holiday.BankHolidayRepository
	booking.BookingRepository
}

func NewHolidayService(
	requestRepository holiday.HolidayRequestRepository,
	bankHolidayRepository holiday.BankHolidayRepository,
	bookingRepository booking.BookingRepository,
) *HolidayServiceImpl {
	return &HolidayServiceImpl{
		HolidayRequestRepository: requestRepository,
		BankHolidayRepository:    bankHolidayRepository,
		BookingRepository:        bookingRepository,
	}
}

// Request implements holiday.HolidayService.
func (s *HolidayServiceImpl) Request(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayRequestResponse, error) {
	code := jwt.EmployeeCodeFromContext(ctx)
	if code == "" {
		return holiday.HolidayRequestResponse{}, auth.ErrInvalidToken
	}
	if err := req.Validate(); err != nil {
		return holiday.HolidayRequestResponse{}, err
	}

	existing, err := s.HolidayRequestRepository.GetPendingOrApprovedInRange(ctx, code, req.StartDate, req.EndDate)
	if err != nil {
		return holiday.HolidayRequestResponse{}, fmt.Errorf("failed to check overlapping holiday requests: %w", err)
	}
	if len(existing) > 0 {
		return holiday.HolidayRequestResponse{}, holiday.ErrRequestOverlapsHoliday
	}

	bookings, err := s.BookingRepository.GetAssignments(ctx, code, req.StartDate, req.EndDate)
	if err != nil {
		return holiday.HolidayRequestResponse{}, fmt.Errorf("failed to check overlapping bookings: %w", err)
	}
	if len(bookings) > 0 {
		return holiday.HolidayRequestResponse{}, holiday.ErrRequestOverlapsBooking
	}

	request := holiday.HolidayRequest{
		EmployeeCode: code,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		HalfDay:      req.HalfDay,
		PaidStatus:   req.PaidStatus,
		LeaveType:    req.LeaveType,
		Reason:       req.Reason,
		Status:       holiday.StatusWaitingApproval,
	}
	if req.HalfDayPeriod != nil {
		period := holiday.HalfDayPeriod(*req.HalfDayPeriod)
		request.HalfDayPeriod = &period
	}

	created, err := s.HolidayRequestRepository.Create(ctx, request)
	if err != nil {
		return holiday.HolidayRequestResponse{}, fmt.Errorf("failed to create holiday request: %w", err)
	}

	return toResponse(created), nil
}

// ListMine implements holiday.HolidayService.
func (s *HolidayServiceImpl) ListMine(ctx context.Context) (holiday.ListHolidayRequestsResponse, error) {
	code := jwt.EmployeeCodeFromContext(ctx)
	if code == "" {
		return holiday.ListHolidayRequestsResponse{}, auth.ErrInvalidToken
	}

	requests, err := s.HolidayRequestRepository.ListByEmployee(ctx, code)
	if err != nil {
		return holiday.ListHolidayRequestsResponse{}, fmt.Errorf("failed to list holiday requests: %w", err)
	}

	out := holiday.ListHolidayRequestsResponse{
		Requests: make([]holiday.HolidayRequestResponse, 0, len(requests)),
	}
	for _, r := range requests {
		out.Requests = append(out.Requests, toResponse(r))
	}
	return out, nil
}

// Cancel implements holiday.HolidayService.
func (s *HolidayServiceImpl) Cancel(ctx context.Context, id string) error {
	code := jwt.EmployeeCodeFromContext(ctx)
	if code == "" {
		return auth.ErrInvalidToken
	}

	request, err := s.HolidayRequestRepository.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get holiday request: %w", err)
	}
	if request.EmployeeCode != code {
		return holiday.ErrUnauthorized
	}
	if request.Status != holiday.StatusWaitingApproval {
		return holiday.ErrRequestAlreadyProcessed
	}

	if err := s.HolidayRequestRepository.UpdateStatus(ctx, id, holiday.StatusCancelled, nil); err != nil {
		return fmt.Errorf("failed to cancel holiday request: %w", err)
	}
	return nil
}

// WeekInfo implements holiday.HolidayService.
func (s *HolidayServiceImpl) WeekInfo(ctx context.Context, employeeCode, weekStart string) (map[string]holiday.DayInfo, error) {
	dates := timesheet.WeekDates(weekStart)
	requests, err := s.HolidayRequestRepository.GetApprovedInRange(ctx, employeeCode, dates[0], dates[len(dates)-1])
	if err != nil {
		return nil, fmt.Errorf("failed to load approved holidays: %w", err)
	}

	info := make(map[string]holiday.DayInfo, len(timesheet.Weekdays))
	for i, day := range timesheet.Weekdays {
		date := dates[i]
		var di holiday.DayInfo
		for _, r := range requests {
			if !r.Covers(date) {
				continue
			}
			half, label := r.HalfDayMeta(date)
			di = holiday.DayInfo{
				HasHoliday: true,
				IsHalfDay:  half,
				PaidStatus: r.PaidStatus,
				LeaveType:  r.LeaveType,
				Label:      label,
			}
			// A full-day request on the same date outranks a half-day one.
			if !half {
				break
			}
		}
		info[day] = di
	}
	return info, nil
}

// BankWeekInfo implements holiday.HolidayService.
func (s *HolidayServiceImpl) BankWeekInfo(ctx context.Context, region, weekStart string) (map[string]holiday.BankHolidayInfo, error) {
	dates := timesheet.WeekDates(weekStart)
	cached, err := s.BankHolidayRepository.GetInRange(ctx, region, dates[0], dates[len(dates)-1])
	if err != nil {
		return nil, fmt.Errorf("failed to load bank holidays: %w", err)
	}

	byDate := make(map[string]holiday.BankHoliday, len(cached))
	for _, bh := range cached {
		byDate[bh.Date] = bh
	}

	info := make(map[string]holiday.BankHolidayInfo, len(timesheet.Weekdays))
	for i, day := range timesheet.Weekdays {
		if bh, ok := byDate[dates[i]]; ok {
			info[day] = holiday.BankHolidayInfo{Name: bh.Title, NotWorking: true}
		} else {
			info[day] = holiday.BankHolidayInfo{}
		}
	}
	return info, nil
}

func toResponse(r holiday.HolidayRequest) holiday.HolidayRequestResponse {
	resp := holiday.HolidayRequestResponse{
		ID:           r.ID,
		EmployeeCode: r.EmployeeCode,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		HalfDay:      r.HalfDay,
		PaidStatus:   r.PaidStatus,
		LeaveType:    r.LeaveType,
		Reason:       r.Reason,
		Status:       string(r.Status),
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
	}
	if r.HalfDayPeriod != nil {
		period := string(*r.HalfDayPeriod)
		resp.HalfDayPeriod = &period
	}
	return resp
}
