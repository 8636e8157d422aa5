package update_stylist_schedule

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	scheduleService "github.com/m04kA/SMC-ScheduleService/internal/service/schedule"
	"github.com/m04kA/SMC-ScheduleService/internal/service/schedule/models"
)

const (
	msgInvalidStylistID = "некорректный ID стилиста"
	msgInvalidBody      = "некорректное тело запроса"
	msgInvalidData      = "некорректные данные расписания"
	msgStylistNotFound  = "стилист не найден"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/stylists/{stylistId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	stylistIDStr := vars["stylistId"]
	stylistID, err := strconv.ParseInt(stylistIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /stylists/{id}/schedule - Invalid stylist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStylistID)
		return
	}

	var req models.UpdateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("PUT /stylists/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}
	req.StylistID = stylistID

	result, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrStylistNotFound):
			h.logger.Warn("PUT /stylists/{id}/schedule - Stylist not found: stylist_id=%d", stylistID)
			handlers.RespondNotFound(w, msgStylistNotFound)

		case errors.Is(err, scheduleService.ErrInvalidInput),
			errors.Is(err, scheduleService.ErrInvalidWorkingDay),
			errors.Is(err, scheduleService.ErrInvalidTimeRange):
			h.logger.Warn("PUT /stylists/{id}/schedule - Invalid data: stylist_id=%d, error=%v", stylistID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /stylists/{id}/schedule - Failed to update schedule: stylist_id=%d, error=%v",
				stylistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /stylists/{id}/schedule - Schedule updated successfully: stylist_id=%d", stylistID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
