package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/luizvb/gendaia-sub001/internal/domain"
	apptRepo "github.com/luizvb/gendaia-sub001/internal/infra/storage/appointment"
	"github.com/luizvb/gendaia-sub001/internal/service/appointments/models"
)

// Service сервис для работы с записями
type Service struct {
	appointmentRepo AppointmentRepository
	businessClient  BusinessServiceClient
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	businessClient BusinessServiceClient,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		businessClient:  businessClient,
		logger:          logger,
	}
}

// GetByID получает запись по ID
// Проверяет права доступа - клиент может видеть только свою запись
func (s *Service) GetByID(ctx context.Context, id int64, clientID int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for client=%d", id, clientID)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if appointment.ClientID != clientID {
		s.logger.Warn("GetByID: access denied for client=%d to appointment id=%d", clientID, id)
		return nil, ErrAccessDenied
	}

	loc := s.locationFor(ctx, appointment.BusinessID)

	s.logger.Info("GetByID: successfully fetched appointment id=%d", id)
	return models.FromDomainAppointment(appointment, loc), nil
}

// GetClientAppointments получает историю записей клиента
// Опционально фильтрует по статусу
func (s *Service) GetClientAppointments(ctx context.Context, req *models.GetClientAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetClientAppointments: fetching appointments for client=%d, status=%v", req.ClientID, req.Status)

	var domainStatus *domain.AppointmentStatus
	if req.Status != nil {
		status, err := models.ToDomainAppointmentStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetClientAppointments: invalid status=%s for client=%d", *req.Status, req.ClientID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	appointments, err := s.appointmentRepo.GetByClientID(ctx, req.ClientID, domainStatus)
	if err != nil {
		s.logger.Error("GetClientAppointments: repository error for client=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: GetClientAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientAppointments: successfully fetched %d appointments for client=%d", len(appointments), req.ClientID)
	return models.FromDomainAppointmentList(appointments, s.locationsFor(ctx, appointments), defaultLocation()), nil
}

// GetProfessionalAppointments получает записи профессионала с фильтрацией по периоду и статусу
// Используется дашбордом бизнеса для отображения расписания профессионала
func (s *Service) GetProfessionalAppointments(ctx context.Context, req *models.GetProfessionalAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetProfessionalAppointments: fetching appointments for business=%d, professional=%d",
		req.BusinessID, req.ProfessionalID)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetProfessionalAppointments: invalid filter for professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetProfessionalAppointments: repository error for professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: GetProfessionalAppointments - repository error: %v", ErrInternal, err)
	}

	loc := s.locationFor(ctx, req.BusinessID)

	s.logger.Info("GetProfessionalAppointments: successfully fetched %d appointments for professional=%d",
		len(appointments), req.ProfessionalID)
	return models.FromDomainAppointmentList(appointments, map[int64]*time.Location{req.BusinessID: loc}, defaultLocation()), nil
}

// GetBusinessAppointments получает записи бизнеса с гибкой фильтрацией
// Поддерживает фильтрацию по профессионалу, периоду, статусу и включению
// отменённых записей
func (s *Service) GetBusinessAppointments(ctx context.Context, req *models.GetBusinessAppointmentsRequest) (*models.AppointmentListResponse, error) {
	logMsg := fmt.Sprintf("GetBusinessAppointments: fetching appointments for business=%d", req.BusinessID)
	if req.ProfessionalID != nil {
		logMsg += fmt.Sprintf(", professional=%d", *req.ProfessionalID)
	}
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetBusinessAppointments: invalid filter for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetBusinessAppointments: repository error for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: GetBusinessAppointments - repository error: %v", ErrInternal, err)
	}

	loc := s.locationFor(ctx, req.BusinessID)

	s.logger.Info("GetBusinessAppointments: successfully fetched %d appointments for business=%d",
		len(appointments), req.BusinessID)
	return models.FromDomainAppointmentList(appointments, map[int64]*time.Location{req.BusinessID: loc}, defaultLocation()), nil
}

// Cancel отменяет запись
// Клиент может отменить только свою запись в статусе scheduled
func (s *Service) Cancel(ctx context.Context, appointmentID int64, req *models.CancelAppointmentRequest) error {
	s.logger.Info("Cancel: cancelling appointment id=%d by client=%d", appointmentID, req.ClientID)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason must not exceed %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	appointment, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if appointment.ClientID != req.ClientID {
		s.logger.Warn("Cancel: access denied for client=%d to appointment id=%d", req.ClientID, appointmentID)
		return ErrAccessDenied
	}

	if !appointment.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", appointmentID, appointment.Status)
		return ErrCannotCancel
	}

	// Отмена переводит запись в неблокирующий статус - слот освобождается
	if err := s.appointmentRepo.Cancel(ctx, appointmentID, req.CancellationReason); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found during cancellation", appointmentID)
			return ErrAppointmentNotFound
		}
		if errors.Is(err, apptRepo.ErrCannotCancel) {
			return ErrCannotCancel
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", appointmentID)
	return nil
}

// Вспомогательные методы

// locationFor возвращает таймзону бизнеса; при недоступности BusinessService
// используется дефолтная, чтобы не ломать read path истории записей
func (s *Service) locationFor(ctx context.Context, businessID int64) *time.Location {
	business, err := s.businessClient.GetBusiness(ctx, businessID)
	if err != nil {
		s.logger.Warn("locationFor: failed to get business id=%d, using default timezone: %v", businessID, err)
		return defaultLocation()
	}

	timezone := business.Timezone
	if timezone == "" {
		timezone = domain.DefaultTimezone
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		s.logger.Warn("locationFor: business id=%d has invalid timezone %q, using default", businessID, timezone)
		return defaultLocation()
	}

	return loc
}

// locationsFor собирает таймзоны всех бизнесов из списка записей
func (s *Service) locationsFor(ctx context.Context, appointments []*domain.Appointment) map[int64]*time.Location {
	locations := make(map[int64]*time.Location)
	for _, appt := range appointments {
		if _, ok := locations[appt.BusinessID]; ok {
			continue
		}
		locations[appt.BusinessID] = s.locationFor(ctx, appt.BusinessID)
	}
	return locations
}

func defaultLocation() *time.Location {
	loc, err := time.LoadLocation(domain.DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
