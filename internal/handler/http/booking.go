package http

import (
	"log/slog"
	"net/http"

	"github.com/crewdesk/crew-backend-go/internal/domain/booking"
	"github.com/crewdesk/crew-backend-go/internal/handler/http/response"
)

type BookingHandler interface {
	MyWeek(w http.ResponseWriter, r *http.Request)
}

type BookingHandlerImpl struct {
	bookingService booking.BookingService
}

func NewBookingHandler(bookingService booking.BookingService) BookingHandler {
	return &BookingHandlerImpl{bookingService: bookingService}
}

// MyWeek implements BookingHandler.
func (h *BookingHandlerImpl) MyWeek(w http.ResponseWriter, r *http.Request) {
	req := booking.WeekBookingsRequest{WeekStart: r.URL.Query().Get("week_start")}

	week, err := h.bookingService.MyWeek(r.Context(), req)
	if err != nil {
		slog.Error("MyWeek service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, week)
}
