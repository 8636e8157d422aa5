package domain

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// LeaveRange represents an inclusive date span during which a stylist is
// fully unavailable (vacation, sick leave)
type LeaveRange struct {
	ID        int64
	StylistID int64
	StartDate time.Time
	EndDate   time.Time
	Reason    *string
	CreatedAt time.Time
}

// Contains returns true if the given date falls inside the range
// (границы включительно). Сравниваются только календарные даты,
// время и часовой пояс не учитываются.
func (l *LeaveRange) Contains(date time.Time) bool {
	d := dateOnly(date)
	return !d.Before(dateOnly(l.StartDate)) && !d.After(dateOnly(l.EndDate))
}

// Break represents a recurring daily unavailable window for a stylist.
// Перерыв действует одинаково в каждый рабочий день, без привязки к дате.
type Break struct {
	ID        int64
	StylistID int64
	StartTime types.TimeString
	EndTime   types.TimeString
	Label     *string
	CreatedAt time.Time
}

// SalonSettings represents salon-wide scheduling settings
type SalonSettings struct {
	ID                  int64
	SlotIntervalMinutes int
	UpdatedAt           time.Time
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
