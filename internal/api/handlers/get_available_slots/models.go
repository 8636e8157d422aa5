package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Success        bool         `json:"success"`
	Date           string       `json:"date"`
	Data           []SlotView   `json:"data"`
	Stylist        StylistView  `json:"stylist"`
	AvailableCount int          `json:"availableCount"`
	Total          int          `json:"total"`
	Message        string       `json:"message,omitempty"`
}

// SlotView модель временного слота
type SlotView struct {
	Time      string `json:"time"` // "10:00"
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// StylistView краткая информация о стилисте
type StylistView struct {
	ID           int64            `json:"id"`
	Name         string           `json:"name"`
	WorkingHours WorkingHoursView `json:"workingHours"`
}

// WorkingHoursView рабочее окно стилиста
type WorkingHoursView struct {
	Start string `json:"start"` // "09:00"
	End   string `json:"end"`   // "18:00"
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotView, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotView{
			Time:      slot.Time.String(),
			Available: slot.Available,
			Reason:    slot.Reason,
		}
	}

	return &AvailableSlotsResponse{
		Success: true,
		Date:    resp.Date.Format(domain.DateFormat),
		Data:    slots,
		Stylist: StylistView{
			ID:   resp.StylistID,
			Name: resp.StylistName,
			WorkingHours: WorkingHoursView{
				Start: resp.WorkStart.String(),
				End:   resp.WorkEnd.String(),
			},
		},
		AvailableCount: resp.AvailableCount,
		Total:          resp.Total,
		Message:        resp.Message,
	}
}

// ToUseCaseRequest создает запрос use case из параметров HTTP запроса
func ToUseCaseRequest(stylistID int64, dateStr string, durationMinutes int) (*getAvailableSlots.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		StylistID:       stylistID,
		Date:            date,
		DurationMinutes: durationMinutes,
	}, nil
}
