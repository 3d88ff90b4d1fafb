package booking

import (
	"context"
	"fmt"

	"github.com/crewdesk/crew-backend-go/internal/domain/auth"
	"github.com/crewdesk/crew-backend-go/internal/domain/booking"
	"github.com/crewdesk/crew-backend-go/internal/domain/timesheet"
	"github.com/crewdesk/crew-backend-go/internal/pkg/jwt"
)

type BookingServiceImpl struct {
	booking.BookingRepository
}

func NewBookingService(bookingRepository booking.BookingRepository) *BookingServiceImpl {
	return &BookingServiceImpl{BookingRepository: bookingRepository}
}

// MyWeek implements booking.BookingService.
func (s *BookingServiceImpl) MyWeek(ctx context.Context, req booking.WeekBookingsRequest) (booking.WeekBookingsResponse, error) {
	code := jwt.EmployeeCodeFromContext(ctx)
	if code == "" {
		return booking.WeekBookingsResponse{}, auth.ErrInvalidToken
	}
	if err := req.Validate(); err != nil {
		return booking.WeekBookingsResponse{}, err
	}

	dates := timesheet.WeekDates(req.WeekStart)
	bookings, err := s.BookingRepository.GetAssignments(ctx, code, dates[0], dates[len(dates)-1])
	if err != nil {
		return booking.WeekBookingsResponse{}, fmt.Errorf("failed to load week bookings: %w", err)
	}

	byDate := make(map[string][]booking.BookingResponse, len(bookings))
	for _, b := range bookings {
		byDate[b.Date] = append(byDate[b.Date], booking.BookingResponse{
			ID:        b.ID,
			JobNumber: b.JobNumber,
			Client:    b.Client,
			Location:  b.Location,
			Date:      b.Date,
			CallTime:  b.CallTime,
			Notes:     b.Notes,
		})
	}

	return booking.WeekBookingsResponse{WeekStart: req.WeekStart, ByDate: byDate}, nil
}
