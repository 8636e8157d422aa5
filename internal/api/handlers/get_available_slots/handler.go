package get_available_slots

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

// Handle GET /api/v1/stylists/{stylistId}/available-slots
// Query params: date (required, YYYY-MM-DD), duration (optional, minutes, default 60)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем stylistId из URL
	stylistIDStr := vars["stylistId"]
	stylistID, err := strconv.ParseInt(stylistIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /stylists/{id}/available-slots - Invalid stylist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStylistID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /stylists/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Извлекаем duration из query параметров (опционально)
	durationMinutes := domain.DefaultAppointmentDurationMinutes
	if durationStr := r.URL.Query().Get("duration"); durationStr != "" {
		durationMinutes, err = strconv.Atoi(durationStr)
		if err != nil || durationMinutes <= 0 {
			h.logger.Warn("GET /stylists/{id}/available-slots - Invalid duration: %q", durationStr)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(stylistID, dateStr, durationMinutes)
	if err != nil {
		h.logger.Warn("GET /stylists/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, getAvailableSlots.ErrStylistNotFound):
			h.logger.Warn("GET /stylists/{id}/available-slots - Stylist not found: stylist_id=%d", stylistID)
			handlers.RespondNotFound(w, msgStylistNotFound)

		case errors.Is(err, getAvailableSlots.ErrDateInPast):
			h.logger.Warn("GET /stylists/{id}/available-slots - Date in past: stylist_id=%d, date=%s",
				stylistID, dateStr)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /stylists/{id}/available-slots - Invalid input: stylist_id=%d, error=%v",
				stylistID, err)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		default:
			h.logger.Error("GET /stylists/{id}/available-slots - Failed to get slots: stylist_id=%d, date=%s, error=%v",
				stylistID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /stylists/{id}/available-slots - Slots retrieved successfully: stylist_id=%d, date=%s, available=%d, total=%d",
		stylistID, dateStr, result.AvailableCount, result.Total)
	handlers.RespondJSON(w, http.StatusOK, response)
}
