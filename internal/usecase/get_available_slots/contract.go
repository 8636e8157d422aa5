package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// StylistRepository интерфейс репозитория стилистов
type StylistRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Stylist, error)
}

// LeaveRepository интерфейс репозитория отпусков
type LeaveRepository interface {
	// GetByStylistForDate получает диапазоны отпусков, покрывающие дату
	GetByStylistForDate(ctx context.Context, stylistID int64, date time.Time) ([]*domain.LeaveRange, error)
}

// BreaksRepository интерфейс репозитория перерывов
type BreaksRepository interface {
	GetByStylist(ctx context.Context, stylistID int64) ([]*domain.Break, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// GetByStylistWithFilter получает записи стилиста с фильтрацией
	GetByStylistWithFilter(ctx context.Context, filter domain.StylistAppointmentsFilter) ([]*domain.Appointment, error)
}

// SettingsRepository интерфейс репозитория настроек салона
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.SalonSettings, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
