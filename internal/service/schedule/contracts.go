package schedule

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// StylistRepository интерфейс репозитория стилистов
type StylistRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Stylist, error)
	UpdateSchedule(ctx context.Context, s *domain.Stylist) (*domain.Stylist, error)
}

// BreaksRepository интерфейс репозитория перерывов
type BreaksRepository interface {
	GetByStylist(ctx context.Context, stylistID int64) ([]*domain.Break, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
