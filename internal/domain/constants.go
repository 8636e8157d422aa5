package domain

import "github.com/m04kA/SMC-ScheduleService/pkg/types"

// Default configuration values
const (
	DefaultSlotIntervalMinutes = 30

	// Длительность услуги по умолчанию и одновременно фиксированная
	// длительность существующей записи при проверке пересечений.
	// Реальная длительность забронированной услуги при проверке
	// не используется.
	DefaultAppointmentDurationMinutes = 60

	// Минимальное время до начала слота при записи на сегодня.
	// Фиксированное бизнес-правило, не настраивается.
	SameDayLeadTimeMinutes = 30
)

// Default working hours, применяются когда у профиля стилиста
// рабочие часы не заполнены
const (
	DefaultWorkStart = types.TimeString("09:00")
	DefaultWorkEnd   = types.TimeString("18:00")
)

// Business validation constants
const (
	MinSlotIntervalMinutes = 5
	MaxSlotIntervalMinutes = 240
	MinDurationMinutes     = 5
	MaxDurationMinutes     = 480 // 8 hours
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// WeekdayNames допустимые значения рабочих дней стилиста
var WeekdayNames = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// IsValidWeekdayName проверяет, что строка - корректное английское
// название дня недели
func IsValidWeekdayName(name string) bool {
	for _, d := range WeekdayNames {
		if d == name {
			return true
		}
	}
	return false
}

// InactiveStatuses список статусов записей, не занимающих время в расписании
// Используется для фильтрации при подсчете доступных слотов
var InactiveStatuses = []AppointmentStatus{
	StatusCancelledByClient,
	StatusCancelledBySalon,
	StatusNoShow,
	StatusCompleted,
}
