package domain

import "github.com/m04kA/SMC-ScheduleService/pkg/types"

// Slot causes for unavailable slots and messages for empty-day outcomes.
// Это часть публичного контракта API - тексты зафиксированы.
const (
	ReasonBreakTime     = "Break time"
	ReasonAlreadyBooked = "Already booked"

	MsgNotWorkingDay = "does not work on this day"
	MsgUnavailable   = "currently unavailable"
	MsgOnLeave       = "on leave"
)

// Slot represents a grid-aligned candidate appointment start time with an
// availability verdict
type Slot struct {
	Time      types.TimeString
	Available bool
	Reason    string // Пустая строка для доступных слотов
}
