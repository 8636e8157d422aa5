package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// GetStylistAppointmentsRequest запрос на получение записей стилиста
type GetStylistAppointmentsRequest struct {
	StylistID       int64      `json:"stylistId"`
	Date            *time.Time `json:"date,omitempty"`            // Фильтр по дате (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отмененные и завершенные записи
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetStylistAppointmentsRequest) ToDomainFilter() (domain.StylistAppointmentsFilter, error) {
	filter := domain.StylistAppointmentsFilter{
		StylistID:       r.StylistID,
		Date:            r.Date,
		IncludeInactive: r.IncludeInactive,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainAppointmentStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              int64  `json:"id"`
	StylistID       int64  `json:"stylistId"`
	CustomerID      int64  `json:"customerId"`
	ServiceID       int64  `json:"serviceId"`
	Date            string `json:"date"`      // "2025-10-15"
	StartTime       string `json:"startTime"` // "10:00"
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`

	// Денормализованные данные
	ServiceName  string  `json:"serviceName"`
	CustomerName string  `json:"customerName"`
	Notes        *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:              a.ID,
		StylistID:       a.StylistID,
		CustomerID:      a.CustomerID,
		ServiceID:       a.ServiceID,
		Date:            a.Date.Format(domain.DateFormat),
		StartTime:       a.StartTime.String(),
		DurationMinutes: a.DurationMinutes,
		Status:          string(a.Status),
		ServiceName:     a.ServiceName,
		CustomerName:    a.CustomerName,
		Notes:           a.Notes,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, a := range appointments {
		if ar := FromDomainAppointment(a); ar != nil {
			resp.Appointments = append(resp.Appointments, *ar)
		}
	}
	resp.Total = len(resp.Appointments)

	return resp
}

// ToDomainAppointmentStatus конвертирует строку в domain статус
func ToDomainAppointmentStatus(s string) (domain.AppointmentStatus, error) {
	status := domain.AppointmentStatus(s)
	switch status {
	case domain.StatusScheduled,
		domain.StatusConfirmed,
		domain.StatusCompleted,
		domain.StatusCancelledByClient,
		domain.StatusCancelledBySalon,
		domain.StatusNoShow:
		return status, nil
	default:
		return "", ErrInvalidStatus
	}
}
