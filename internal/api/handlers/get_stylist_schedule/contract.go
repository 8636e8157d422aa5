package get_stylist_schedule

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/service/schedule/models"
)

type ScheduleService interface {
	GetByStylist(ctx context.Context, stylistID int64) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
