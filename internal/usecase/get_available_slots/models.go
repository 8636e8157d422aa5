package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	StylistID       int64     // ID стилиста
	Date            time.Time // Дата для получения слотов (без времени)
	DurationMinutes int       // Длительность запрашиваемой услуги в минутах
}

// Response модель ответа со списком слотов
type Response struct {
	Date        time.Time        // Дата, на которую запрашивались слоты
	StylistID   int64            // ID стилиста
	StylistName string           // Имя стилиста
	WorkStart   types.TimeString // Начало рабочего дня
	WorkEnd     types.TimeString // Конец рабочего дня
	Slots       []domain.Slot    // Список слотов с вердиктами доступности

	AvailableCount int // Количество доступных слотов
	Total          int // Общее количество слотов

	// Message заполняется для дней без доступности
	// (нерабочий день, отпуск, экстренная недоступность)
	Message string
}

// AvailabilityContext полный снимок данных, необходимый для расчета слотов.
// Собирается usecase'ом из нескольких независимых чтений хранилища до
// вызова движка - сам движок к хранилищу не обращается и остается
// чистой функцией над этим значением.
type AvailabilityContext struct {
	WorkingDays            []string
	WorkStart              types.TimeString
	WorkEnd                types.TimeString
	IsEmergencyUnavailable bool

	LeaveRanges  []*domain.LeaveRange
	Breaks       []*domain.Break
	Appointments []*domain.Appointment

	SlotIntervalMinutes int
	Date                time.Time
	DurationMinutes     int
	Now                 time.Time
}
