package domain

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Stylist represents a stylist's availability profile
type Stylist struct {
	ID   int64
	Name string

	// Working days as English weekday names ("Monday" ... "Sunday").
	// Пустой список означает отсутствие ограничений по дням недели.
	WorkingDays []string

	WorkStart types.TimeString
	WorkEnd   types.TimeString

	// Ручной флаг, обнуляющий доступность независимо от расписания
	IsEmergencyUnavailable bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// WorksOn returns true if the stylist works on the given weekday
// Пустой список рабочих дней трактуется как "работает каждый день"
func (s *Stylist) WorksOn(weekday time.Weekday) bool {
	if len(s.WorkingDays) == 0 {
		return true
	}
	name := weekday.String()
	for _, day := range s.WorkingDays {
		if day == name {
			return true
		}
	}
	return false
}

// WorkingHours returns the stylist's working window, falling back to the
// salon-wide default when the profile has no hours set
func (s *Stylist) WorkingHours() (types.TimeString, types.TimeString) {
	start, end := s.WorkStart, s.WorkEnd
	if start == "" || end == "" {
		return DefaultWorkStart, DefaultWorkEnd
	}
	return start, end
}
