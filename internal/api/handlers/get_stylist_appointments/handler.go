package get_stylist_appointments

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	appointmentsService "github.com/m04kA/SMC-ScheduleService/internal/service/appointments"
	"github.com/m04kA/SMC-ScheduleService/internal/service/appointments/models"
)

const (
	msgInvalidStylistID = "некорректный ID стилиста"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStatus    = "некорректный статус записи"
	msgStylistNotFound  = "стилист не найден"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/stylists/{stylistId}/appointments
// Query params: date (optional, YYYY-MM-DD), status (optional),
// includeInactive (optional, bool)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	stylistIDStr := vars["stylistId"]
	stylistID, err := strconv.ParseInt(stylistIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /stylists/{id}/appointments - Invalid stylist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStylistID)
		return
	}

	req := &models.GetStylistAppointmentsRequest{
		StylistID: stylistID,
	}

	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /stylists/{id}/appointments - Invalid date format: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		req.Status = &statusStr
	}

	if includeStr := r.URL.Query().Get("includeInactive"); includeStr != "" {
		req.IncludeInactive = includeStr == "true"
	}

	result, err := h.service.GetStylistAppointments(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrStylistNotFound):
			h.logger.Warn("GET /stylists/{id}/appointments - Stylist not found: stylist_id=%d", stylistID)
			handlers.RespondNotFound(w, msgStylistNotFound)

		case errors.Is(err, appointmentsService.ErrInvalidStatus):
			h.logger.Warn("GET /stylists/{id}/appointments - Invalid status: stylist_id=%d", stylistID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /stylists/{id}/appointments - Failed to get appointments: stylist_id=%d, error=%v",
				stylistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /stylists/{id}/appointments - Appointments retrieved successfully: stylist_id=%d, count=%d",
		stylistID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
