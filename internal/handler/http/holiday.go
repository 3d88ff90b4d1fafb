package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/crewdesk/crew-backend-go/internal/domain/holiday"
	"github.com/crewdesk/crew-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type HolidayHandler interface {
	Request(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	BankWeek(w http.ResponseWriter, r *http.Request)
}

const defaultBankHolidayRegion = "england-and-wales"

type HolidayHandlerImpl struct {
	holidayService holiday.HolidayService
}

func NewHolidayHandler(holidayService holiday.HolidayService) HolidayHandler {
	return &HolidayHandlerImpl{holidayService: holidayService}
}

// Request implements HolidayHandler.
func (h *HolidayHandlerImpl) Request(w http.ResponseWriter, r *http.Request) {
	var req holiday.CreateHolidayRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Holiday request decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.holidayService.Request(r.Context(), req)
	if err != nil {
		slog.Error("Holiday request service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday request submitted", created)
}

// ListMine implements HolidayHandler.
func (h *HolidayHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	requests, err := h.holidayService.ListMine(r.Context())
	if err != nil {
		slog.Error("Holiday list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// Cancel implements HolidayHandler.
func (h *HolidayHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Missing request id", nil)
		return
	}

	if err := h.holidayService.Cancel(r.Context(), id); err != nil {
		slog.Error("Holiday cancel service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday request cancelled", nil)
}

// BankWeek implements HolidayHandler.
func (h *HolidayHandlerImpl) BankWeek(w http.ResponseWriter, r *http.Request) {
	weekStart := r.URL.Query().Get("week_start")
	if weekStart == "" {
		response.BadRequest(w, "Missing week_start", nil)
		return
	}
	region := r.URL.Query().Get("region")
	if region == "" {
		region = defaultBankHolidayRegion
	}

	info, err := h.holidayService.BankWeekInfo(r.Context(), region, weekStart)
	if err != nil {
		slog.Error("Bank holiday week service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, info)
}
