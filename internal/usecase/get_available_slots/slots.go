package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// computeAvailableSlots рассчитывает слоты на день по снимку данных.
// Чистая функция: без I/O, без состояния между вызовами.
//
// Возвращает список слотов и сообщение. Непустое сообщение означает
// нормальный результат "доступности нет" (нерабочий день, экстренная
// недоступность, отпуск) - это не ошибка.
func computeAvailableSlots(actx AvailabilityContext) ([]domain.Slot, string, error) {
	// Предусловия проверяются по порядку, каждое обрывает расчет

	// 1. Стилист не работает в этот день недели
	if !worksOnDay(actx.WorkingDays, actx.Date.Weekday()) {
		return []domain.Slot{}, domain.MsgNotWorkingDay, nil
	}

	// 2. Флаг экстренной недоступности обнуляет расписание целиком
	if actx.IsEmergencyUnavailable {
		return []domain.Slot{}, domain.MsgUnavailable, nil
	}

	// 3. Дата попадает в отпуск (границы диапазона включительно)
	for _, lr := range actx.LeaveRanges {
		if lr.Contains(actx.Date) {
			return []domain.Slot{}, domain.MsgOnLeave, nil
		}
	}

	startTime, err := actx.WorkStart.Minutes()
	if err != nil {
		return nil, "", err
	}
	endTime, err := actx.WorkEnd.Minutes()
	if err != nil {
		return nil, "", err
	}

	currentTime := startTime

	// Для записи на сегодня действует буфер в 30 минут от текущего
	// момента, после чего время округляется вверх до сетки слотов.
	// Прошедшие слоты при этом отбрасываются.
	if isSameDay(actx.Date, actx.Now) {
		nowMinutes := actx.Now.Hour()*60 + actx.Now.Minute() + domain.SameDayLeadTimeMinutes
		earliest := ceilToGrid(nowMinutes, actx.SlotIntervalMinutes)
		if earliest > currentTime {
			currentTime = earliest
		}
	}

	slots := make([]domain.Slot, 0)

	// Слот попадает в выдачу только если услуга целиком помещается
	// до закрытия - усеченный хвостовой слот не генерируется
	for currentTime+actx.DurationMinutes <= endTime {
		slotEnd := currentTime + actx.DurationMinutes

		isBreak, err := overlapsBreak(currentTime, slotEnd, actx.Breaks)
		if err != nil {
			return nil, "", err
		}

		// Перерывы имеют приоритет: слот, пересекающий перерыв,
		// не проверяется на записи и не помечается как занятый
		isBooked := false
		if !isBreak {
			isBooked, err = overlapsAppointment(currentTime, slotEnd, actx.Appointments)
			if err != nil {
				return nil, "", err
			}
		}

		slot := domain.Slot{
			Time:      types.FromMinutes(currentTime),
			Available: !isBreak && !isBooked,
		}
		switch {
		case isBreak:
			slot.Reason = domain.ReasonBreakTime
		case isBooked:
			slot.Reason = domain.ReasonAlreadyBooked
		}

		slots = append(slots, slot)
		currentTime += actx.SlotIntervalMinutes
	}

	return slots, "", nil
}

// overlapsBreak проверяет, пересекает ли слот [slotStart, slotEnd)
// какой-либо из перерывов
func overlapsBreak(slotStart, slotEnd int, breaks []*domain.Break) (bool, error) {
	for _, b := range breaks {
		breakStart, err := b.StartTime.Minutes()
		if err != nil {
			return false, err
		}
		breakEnd, err := b.EndTime.Minutes()
		if err != nil {
			return false, err
		}

		if overlaps(slotStart, slotEnd, breakStart, breakEnd) {
			return true, nil
		}
	}
	return false, nil
}

// overlapsAppointment проверяет, пересекает ли слот какую-либо из записей.
// Занятый записью интервал считается фиксированной длительности
// (domain.DefaultAppointmentDurationMinutes) независимо от реальной
// длительности забронированной услуги.
func overlapsAppointment(slotStart, slotEnd int, appointments []*domain.Appointment) (bool, error) {
	for _, a := range appointments {
		// Отмененные, no-show и завершенные записи время не занимают
		if !a.IsActive() {
			continue
		}

		apptStart, err := a.StartTime.Minutes()
		if err != nil {
			return false, err
		}
		apptEnd := apptStart + domain.DefaultAppointmentDurationMinutes

		if overlaps(slotStart, slotEnd, apptStart, apptEnd) {
			return true, nil
		}
	}
	return false, nil
}

// overlaps проверяет РЕАЛЬНОЕ пересечение полуоткрытых интервалов.
// Строгие неравенства: интервалы, граничащие ровно в одной точке,
// пересечением не считаются.
//
// Примеры:
// - Слот 11:30-12:30, запись 11:20-12:20 → ЕСТЬ пересечение (11:30-12:20)
// - Слот 11:30-12:30, запись 10:30-11:30 → НЕТ пересечения (граничат)
// - Слот 11:30-12:30, запись 12:30-13:30 → НЕТ пересечения (граничат)
func overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}

// ceilToGrid округляет minutes вверх до ближайшего кратного interval
func ceilToGrid(minutes, interval int) int {
	if interval <= 0 {
		return minutes
	}
	return (minutes + interval - 1) / interval * interval
}

// worksOnDay проверяет, работает ли стилист в указанный день недели
// Пустой список рабочих дней трактуется как "без ограничений"
func worksOnDay(workingDays []string, weekday time.Weekday) bool {
	if len(workingDays) == 0 {
		return true
	}
	name := weekday.String()
	for _, day := range workingDays {
		if day == name {
			return true
		}
	}
	return false
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
