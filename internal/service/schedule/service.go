package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	stylistRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/stylist"
	"github.com/m04kA/SMC-ScheduleService/internal/service/schedule/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Service сервис для работы с расписаниями стилистов
type Service struct {
	stylistRepo StylistRepository
	breaksRepo  BreaksRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	stylistRepository StylistRepository,
	breaksRepository BreaksRepository,
	logger Logger,
) *Service {
	return &Service{
		stylistRepo: stylistRepository,
		breaksRepo:  breaksRepository,
		logger:      logger,
	}
}

// GetByStylist получает расписание стилиста вместе с перерывами
func (s *Service) GetByStylist(ctx context.Context, stylistID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("GetByStylist: fetching schedule for stylist=%d", stylistID)

	stylist, err := s.stylistRepo.GetByID(ctx, stylistID)
	if err != nil {
		if errors.Is(err, stylistRepo.ErrStylistNotFound) {
			s.logger.Warn("GetByStylist: stylist id=%d not found", stylistID)
			return nil, ErrStylistNotFound
		}
		s.logger.Error("GetByStylist: repository error for stylist id=%d: %v", stylistID, err)
		return nil, fmt.Errorf("%w: GetByStylist - repository error: %v", ErrInternal, err)
	}

	stylistBreaks, err := s.breaksRepo.GetByStylist(ctx, stylistID)
	if err != nil {
		s.logger.Error("GetByStylist: failed to get breaks for stylist id=%d: %v", stylistID, err)
		return nil, fmt.Errorf("%w: GetByStylist - failed to get breaks: %v", ErrInternal, err)
	}

	s.logger.Info("GetByStylist: successfully fetched schedule for stylist=%d", stylistID)
	return models.FromDomain(stylist, stylistBreaks), nil
}

// Update обновляет расписание стилиста
// Обновляются только переданные поля, остальные сохраняют текущие значения
func (s *Service) Update(ctx context.Context, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("Update: updating schedule for stylist=%d", req.StylistID)

	// 1. Валидируем входные данные
	if err := s.validateUpdateRequest(req); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущий профиль
	stylist, err := s.stylistRepo.GetByID(ctx, req.StylistID)
	if err != nil {
		if errors.Is(err, stylistRepo.ErrStylistNotFound) {
			s.logger.Warn("Update: stylist id=%d not found", req.StylistID)
			return nil, ErrStylistNotFound
		}
		s.logger.Error("Update: repository error for stylist id=%d: %v", req.StylistID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	// 3. Применяем только переданные поля
	if req.WorkingDays != nil {
		stylist.WorkingDays = *req.WorkingDays
	}
	if req.WorkStart != nil {
		workStart, err := types.NewTimeStringFromString(*req.WorkStart)
		if err != nil {
			return nil, fmt.Errorf("%w: workStart: %v", ErrInvalidInput, err)
		}
		stylist.WorkStart = workStart
	}
	if req.WorkEnd != nil {
		workEnd, err := types.NewTimeStringFromString(*req.WorkEnd)
		if err != nil {
			return nil, fmt.Errorf("%w: workEnd: %v", ErrInvalidInput, err)
		}
		stylist.WorkEnd = workEnd
	}
	if req.IsEmergencyUnavailable != nil {
		stylist.IsEmergencyUnavailable = *req.IsEmergencyUnavailable
	}

	// 4. Рабочее окно должно оставаться корректным
	workStart, workEnd := stylist.WorkingHours()
	if !workStart.IsBefore(workEnd) {
		s.logger.Warn("Update: invalid working window %s-%s for stylist=%d", workStart, workEnd, req.StylistID)
		return nil, fmt.Errorf("%w: work start must be before work end", ErrInvalidTimeRange)
	}

	// 5. Сохраняем
	updated, err := s.stylistRepo.UpdateSchedule(ctx, stylist)
	if err != nil {
		if errors.Is(err, stylistRepo.ErrStylistNotFound) {
			return nil, ErrStylistNotFound
		}
		s.logger.Error("Update: failed to update schedule for stylist id=%d: %v", req.StylistID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	stylistBreaks, err := s.breaksRepo.GetByStylist(ctx, req.StylistID)
	if err != nil {
		s.logger.Error("Update: failed to get breaks for stylist id=%d: %v", req.StylistID, err)
		return nil, fmt.Errorf("%w: Update - failed to get breaks: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated schedule for stylist=%d", req.StylistID)
	return models.FromDomain(updated, stylistBreaks), nil
}

// validateUpdateRequest валидирует запрос на обновление расписания
func (s *Service) validateUpdateRequest(req *models.UpdateScheduleRequest) error {
	if req.StylistID <= 0 {
		return fmt.Errorf("%w: stylistID must be positive", ErrInvalidInput)
	}

	if req.WorkingDays != nil {
		for _, day := range *req.WorkingDays {
			if !domain.IsValidWeekdayName(day) {
				return fmt.Errorf("%w: %q", ErrInvalidWorkingDay, day)
			}
		}
	}

	return nil
}
