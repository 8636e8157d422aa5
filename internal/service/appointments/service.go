package appointments

import (
	"context"
	"errors"
	"fmt"

	appointmentRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/appointment"
	stylistRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/stylist"
	"github.com/m04kA/SMC-ScheduleService/internal/service/appointments/models"
)

// Service сервис для чтения записей клиентов
type Service struct {
	appointmentRepo AppointmentRepository
	stylistRepo     StylistRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepository AppointmentRepository,
	stylistRepository StylistRepository,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepository,
		stylistRepo:     stylistRepository,
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%d", id)
	return models.FromDomainAppointment(appointment), nil
}

// GetStylistAppointments получает записи стилиста с фильтрацией
// Поддерживает фильтрацию по дате, статусу и включению неактивных записей
func (s *Service) GetStylistAppointments(ctx context.Context, req *models.GetStylistAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetStylistAppointments: fetching appointments for stylist=%d", req.StylistID)

	if req.StylistID <= 0 {
		return nil, fmt.Errorf("%w: stylistID must be positive", ErrInvalidInput)
	}

	// Проверяем существование стилиста, чтобы отличать пустой день от
	// несуществующего стилиста
	if _, err := s.stylistRepo.GetByID(ctx, req.StylistID); err != nil {
		if errors.Is(err, stylistRepo.ErrStylistNotFound) {
			s.logger.Warn("GetStylistAppointments: stylist id=%d not found", req.StylistID)
			return nil, ErrStylistNotFound
		}
		s.logger.Error("GetStylistAppointments: failed to get stylist id=%d: %v", req.StylistID, err)
		return nil, fmt.Errorf("%w: GetStylistAppointments - repository error: %v", ErrInternal, err)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetStylistAppointments: invalid status=%v for stylist=%d", req.Status, req.StylistID)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidStatus)
	}

	appointments, err := s.appointmentRepo.GetByStylistWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetStylistAppointments: repository error for stylist=%d: %v", req.StylistID, err)
		return nil, fmt.Errorf("%w: GetStylistAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetStylistAppointments: successfully fetched %d appointments for stylist=%d",
		len(appointments), req.StylistID)
	return models.FromDomainAppointmentList(appointments), nil
}
