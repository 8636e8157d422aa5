package domain

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled         AppointmentStatus = "scheduled"
	StatusConfirmed         AppointmentStatus = "confirmed"
	StatusCompleted         AppointmentStatus = "completed"
	StatusCancelledByClient AppointmentStatus = "cancelled_by_client"
	StatusCancelledBySalon  AppointmentStatus = "cancelled_by_salon"
	StatusNoShow            AppointmentStatus = "no_show"
)

// Appointment represents a booked salon appointment
type Appointment struct {
	ID              int64
	StylistID       int64
	CustomerID      int64
	ServiceID       int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          AppointmentStatus

	// Denormalized data for history
	ServiceName  string
	CustomerName string
	Notes        *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies time on the
// schedule. Завершенные, отмененные и no-show записи время не занимают.
func (a *Appointment) IsActive() bool {
	for _, s := range InactiveStatuses {
		if a.Status == s {
			return false
		}
	}
	return true
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelledByClient || a.Status == StatusCancelledBySalon
}

// StylistAppointmentsFilter фильтр для получения записей стилиста
type StylistAppointmentsFilter struct {
	StylistID       int64              // Обязательный параметр
	Date            *time.Time         // Фильтр по дате (опционально)
	Status          *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли неактивные записи
}
