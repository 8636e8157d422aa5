package models

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Request модели

// UpdateScheduleRequest запрос на обновление расписания стилиста
// Все поля опциональны - обновляются только переданные значения
type UpdateScheduleRequest struct {
	StylistID              int64     `json:"-"`
	WorkingDays            *[]string `json:"workingDays,omitempty"`
	WorkStart              *string   `json:"workStart,omitempty"` // "HH:MM"
	WorkEnd                *string   `json:"workEnd,omitempty"`   // "HH:MM"
	IsEmergencyUnavailable *bool     `json:"isEmergencyUnavailable,omitempty"`
}

// Response модели

// BreakResponse перерыв стилиста
type BreakResponse struct {
	StartTime string  `json:"startTime"` // "13:00"
	EndTime   string  `json:"endTime"`   // "14:00"
	Label     *string `json:"label,omitempty"`
}

// ScheduleResponse ответ с расписанием стилиста
type ScheduleResponse struct {
	StylistID              int64           `json:"stylistId"`
	Name                   string          `json:"name"`
	WorkingDays            []string        `json:"workingDays"`
	WorkStart              string          `json:"workStart"`
	WorkEnd                string          `json:"workEnd"`
	IsEmergencyUnavailable bool            `json:"isEmergencyUnavailable"`
	Breaks                 []BreakResponse `json:"breaks"`
	UpdatedAt              time.Time       `json:"updatedAt"`
}

// Методы конвертации

// FromDomain конвертирует профиль стилиста и его перерывы в DTO
func FromDomain(s *domain.Stylist, stylistBreaks []*domain.Break) *ScheduleResponse {
	if s == nil {
		return nil
	}

	workStart, workEnd := s.WorkingHours()

	workingDays := s.WorkingDays
	if workingDays == nil {
		workingDays = []string{}
	}

	breaks := make([]BreakResponse, len(stylistBreaks))
	for i, b := range stylistBreaks {
		breaks[i] = BreakResponse{
			StartTime: b.StartTime.String(),
			EndTime:   b.EndTime.String(),
			Label:     b.Label,
		}
	}

	return &ScheduleResponse{
		StylistID:              s.ID,
		Name:                   s.Name,
		WorkingDays:            workingDays,
		WorkStart:              workStart.String(),
		WorkEnd:                workEnd.String(),
		IsEmergencyUnavailable: s.IsEmergencyUnavailable,
		Breaks:                 breaks,
		UpdatedAt:              s.UpdatedAt,
	}
}
