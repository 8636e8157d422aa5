package get_stylist_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	scheduleService "github.com/m04kA/SMC-ScheduleService/internal/service/schedule"
)

const (
	msgInvalidStylistID = "некорректный ID стилиста"
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

// Handle GET /api/v1/stylists/{stylistId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	stylistIDStr := vars["stylistId"]
	stylistID, err := strconv.ParseInt(stylistIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /stylists/{id}/schedule - Invalid stylist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStylistID)
		return
	}

	result, err := h.service.GetByStylist(r.Context(), stylistID)
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrStylistNotFound):
			h.logger.Warn("GET /stylists/{id}/schedule - Stylist not found: stylist_id=%d", stylistID)
			handlers.RespondNotFound(w, msgStylistNotFound)

		default:
			h.logger.Error("GET /stylists/{id}/schedule - Failed to get schedule: stylist_id=%d, error=%v",
				stylistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /stylists/{id}/schedule - Schedule retrieved successfully: stylist_id=%d", stylistID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
