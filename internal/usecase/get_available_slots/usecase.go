package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/settings"
	stylistRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/stylist"
)

// UseCase use case для получения доступных слотов для записи
type UseCase struct {
	stylistRepo     StylistRepository
	leaveRepo       LeaveRepository
	breaksRepo      BreaksRepository
	appointmentRepo AppointmentRepository
	settingsRepo    SettingsRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	stylistRepository StylistRepository,
	leaveRepository LeaveRepository,
	breaksRepository BreaksRepository,
	appointmentRepository AppointmentRepository,
	settingsRepository SettingsRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		stylistRepo:     stylistRepository,
		leaveRepo:       leaveRepository,
		breaksRepo:      breaksRepository,
		appointmentRepo: appointmentRepository,
		settingsRepo:    settingsRepository,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: stylist=%d, date=%s, duration=%d",
		req.StylistID, req.Date.Format(domain.DateFormat), req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время и проверяем, что дата не в прошлом
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	// 3. Получаем профиль стилиста
	stylist, err := uc.stylistRepo.GetByID(ctx, req.StylistID)
	if err != nil {
		if errors.Is(err, stylistRepo.ErrStylistNotFound) {
			uc.logger.Warn("GetAvailableSlots: stylist id=%d not found", req.StylistID)
			return nil, ErrStylistNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get stylist id=%d: %v", req.StylistID, err)
		return nil, fmt.Errorf("%w: failed to get stylist: %v", ErrInternal, err)
	}

	// 4. Получаем отпуска, покрывающие дату
	leaveRanges, err := uc.leaveRepo.GetByStylistForDate(ctx, req.StylistID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get leave ranges for stylist id=%d: %v", req.StylistID, err)
		return nil, fmt.Errorf("%w: failed to get leave ranges: %v", ErrInternal, err)
	}

	// 5. Получаем шаг сетки слотов из настроек салона
	// Если настройки не заведены, используем значение по умолчанию
	slotInterval := domain.DefaultSlotIntervalMinutes
	salonSettings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Error("GetAvailableSlots: failed to get salon settings: %v", err)
			return nil, fmt.Errorf("%w: failed to get salon settings: %v", ErrInternal, err)
		}
		uc.logger.Warn("GetAvailableSlots: salon settings missing, using default slot interval %d",
			domain.DefaultSlotIntervalMinutes)
	}
	if salonSettings != nil && salonSettings.SlotIntervalMinutes > 0 {
		slotInterval = salonSettings.SlotIntervalMinutes
	}

	// 6. Получаем перерывы стилиста
	stylistBreaks, err := uc.breaksRepo.GetByStylist(ctx, req.StylistID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get breaks for stylist id=%d: %v", req.StylistID, err)
		return nil, fmt.Errorf("%w: failed to get breaks: %v", ErrInternal, err)
	}

	// 7. Получаем активные записи на дату
	// Отмененные, no-show и завершенные записи исключаются фильтром
	filter := domain.StylistAppointmentsFilter{
		StylistID:       req.StylistID,
		Date:            &req.Date,
		IncludeInactive: false,
	}
	appointments, err := uc.appointmentRepo.GetByStylistWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments for stylist id=%d: %v", req.StylistID, err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 8. Собираем контекст доступности и вызываем движок
	// Рабочие часы по умолчанию подставляются здесь, на границе -
	// движок получает уже заполненные значения
	workStart, workEnd := stylist.WorkingHours()

	actx := AvailabilityContext{
		WorkingDays:            stylist.WorkingDays,
		WorkStart:              workStart,
		WorkEnd:                workEnd,
		IsEmergencyUnavailable: stylist.IsEmergencyUnavailable,
		LeaveRanges:            leaveRanges,
		Breaks:                 stylistBreaks,
		Appointments:           appointments,
		SlotIntervalMinutes:    slotInterval,
		Date:                   req.Date,
		DurationMinutes:        req.DurationMinutes,
		Now:                    now,
	}

	slots, message, err := computeAvailableSlots(actx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to compute slots: %v", err)
		return nil, fmt.Errorf("%w: failed to compute slots: %v", ErrInternal, err)
	}

	availableCount := 0
	for _, slot := range slots {
		if slot.Available {
			availableCount++
		}
	}

	if message != "" {
		uc.logger.Info("GetAvailableSlots: no availability for stylist=%d on %s: %s",
			req.StylistID, req.Date.Format(domain.DateFormat), message)
	} else {
		uc.logger.Info("GetAvailableSlots: generated %d slots (%d available) for stylist=%d, date=%s",
			len(slots), availableCount, req.StylistID, req.Date.Format(domain.DateFormat))
	}

	return &Response{
		Date:           req.Date,
		StylistID:      stylist.ID,
		StylistName:    stylist.Name,
		WorkStart:      workStart,
		WorkEnd:        workEnd,
		Slots:          slots,
		AvailableCount: availableCount,
		Total:          len(slots),
		Message:        message,
	}, nil
}
