package get_slot_summary

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_available_slots"
)

const (
	msgInvalidStylistID = "некорректный ID стилиста"
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDuration  = "некорректная длительность услуги"
	msgDateInPast       = "нельзя получить слоты на прошедшую дату"
	msgStylistNotFound  = "стилист не найден"
)

// Handler второй потребитель движка доступности: компактная выдача
// для бота в мессенджере. Использует тот же use case, что и публичный
// эндпоинт доступных слотов.
type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/stylists/{stylistId}/slot-summary
// Query params: date (required, YYYY-MM-DD), duration (optional, minutes, default 60)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	stylistIDStr := vars["stylistId"]
	stylistID, err := strconv.ParseInt(stylistIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /stylists/{id}/slot-summary - Invalid stylist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStylistID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /stylists/{id}/slot-summary - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	durationMinutes := domain.DefaultAppointmentDurationMinutes
	if durationStr := r.URL.Query().Get("duration"); durationStr != "" {
		durationMinutes, err = strconv.Atoi(durationStr)
		if err != nil || durationMinutes <= 0 {
			h.logger.Warn("GET /stylists/{id}/slot-summary - Invalid duration: %q", durationStr)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
	}

	date, err := parseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /stylists/{id}/slot-summary - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		StylistID:       stylistID,
		Date:            date,
		DurationMinutes: durationMinutes,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrStylistNotFound):
			h.logger.Warn("GET /stylists/{id}/slot-summary - Stylist not found: stylist_id=%d", stylistID)
			handlers.RespondNotFound(w, msgStylistNotFound)

		case errors.Is(err, getAvailableSlots.ErrDateInPast):
			h.logger.Warn("GET /stylists/{id}/slot-summary - Date in past: stylist_id=%d, date=%s", stylistID, dateStr)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /stylists/{id}/slot-summary - Invalid input: stylist_id=%d, error=%v", stylistID, err)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		default:
			h.logger.Error("GET /stylists/{id}/slot-summary - Failed to get slots: stylist_id=%d, date=%s, error=%v",
				stylistID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /stylists/{id}/slot-summary - Summary built: stylist_id=%d, date=%s, available=%d",
		stylistID, dateStr, result.AvailableCount)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
