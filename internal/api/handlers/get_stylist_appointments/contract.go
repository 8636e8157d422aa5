package get_stylist_appointments

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/service/appointments/models"
)

type AppointmentsService interface {
	GetStylistAppointments(ctx context.Context, req *models.GetStylistAppointmentsRequest) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
