package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/crewdesk/crew-backend-go/internal/domain/timesheet"
	"github.com/crewdesk/crew-backend-go/internal/handler/http/response"
)

type TimesheetHandler interface {
	GetWeek(w http.ResponseWriter, r *http.Request)
	UpdateDay(w http.ResponseWriter, r *http.Request)
	ToggleTurnaround(w http.ResponseWriter, r *http.Request)
	SaveWeek(w http.ResponseWriter, r *http.Request)
	SubmitWeek(w http.ResponseWriter, r *http.Request)
}

type TimesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &TimesheetHandlerImpl{timesheetService: timesheetService}
}

// GetWeek implements TimesheetHandler.
func (h *TimesheetHandlerImpl) GetWeek(w http.ResponseWriter, r *http.Request) {
	req := timesheet.GetWeekRequest{WeekStart: r.URL.Query().Get("week_start")}

	week, err := h.timesheetService.GetWeek(r.Context(), req)
	if err != nil {
		slog.Error("GetWeek service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, week)
}

// UpdateDay implements TimesheetHandler.
func (h *TimesheetHandlerImpl) UpdateDay(w http.ResponseWriter, r *http.Request) {
	var req timesheet.UpdateDayRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateDay decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	week, err := h.timesheetService.UpdateDay(r.Context(), req)
	if err != nil {
		slog.Error("UpdateDay service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, week)
}

// ToggleTurnaround implements TimesheetHandler.
func (h *TimesheetHandlerImpl) ToggleTurnaround(w http.ResponseWriter, r *http.Request) {
	var req timesheet.ToggleTurnaroundRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ToggleTurnaround decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.timesheetService.ToggleTurnaround(r.Context(), req)
	if err != nil {
		slog.Error("ToggleTurnaround service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SaveWeek implements TimesheetHandler.
func (h *TimesheetHandlerImpl) SaveWeek(w http.ResponseWriter, r *http.Request) {
	var req timesheet.SaveWeekRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SaveWeek decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	week, err := h.timesheetService.SaveWeek(r.Context(), req)
	if err != nil {
		slog.Error("SaveWeek service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timesheet saved", week)
}

// SubmitWeek implements TimesheetHandler.
func (h *TimesheetHandlerImpl) SubmitWeek(w http.ResponseWriter, r *http.Request) {
	var req timesheet.SaveWeekRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SubmitWeek decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	week, err := h.timesheetService.SubmitWeek(r.Context(), req)
	if err != nil {
		slog.Error("SubmitWeek service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timesheet submitted", week)
}
