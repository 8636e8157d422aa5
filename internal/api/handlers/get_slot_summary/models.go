package get_slot_summary

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_available_slots"
)

// parseDate парсит дату из query параметра
func parseDate(s string) (time.Time, error) {
	return time.Parse(domain.DateFormat, s)
}

// SlotSummaryResponse компактный ответ для бота: только свободные времена
// и готовая текстовая строка для отправки в мессенджер
type SlotSummaryResponse struct {
	Success        bool     `json:"success"`
	StylistName    string   `json:"stylistName"`
	Date           string   `json:"date"`
	AvailableTimes []string `json:"availableTimes"`
	Summary        string   `json:"summary"`
}

// FromUseCaseResponse конвертирует ответ use case в компактный ответ бота
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotSummaryResponse {
	times := make([]string, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		if slot.Available {
			times = append(times, slot.Time.String())
		}
	}

	return &SlotSummaryResponse{
		Success:        true,
		StylistName:    resp.StylistName,
		Date:           resp.Date.Format(domain.DateFormat),
		AvailableTimes: times,
		Summary:        buildSummary(resp, times),
	}
}

// buildSummary формирует строку для отправки клиенту в мессенджере
func buildSummary(resp *getAvailableSlots.Response, times []string) string {
	date := resp.Date.Format(domain.DateFormat)

	if resp.Message != "" {
		return fmt.Sprintf("%s %s: %s", resp.StylistName, date, resp.Message)
	}
	if len(times) == 0 {
		return fmt.Sprintf("%s has no free slots on %s", resp.StylistName, date)
	}
	return fmt.Sprintf("%s is free on %s at: %s", resp.StylistName, date, strings.Join(times, ", "))
}
