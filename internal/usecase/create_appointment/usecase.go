package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/luizvb/gendaia-sub001/internal/domain"
	apptRepo "github.com/luizvb/gendaia-sub001/internal/infra/storage/appointment"
	scheduleRepo "github.com/luizvb/gendaia-sub001/internal/infra/storage/schedule"
	businessClient "github.com/luizvb/gendaia-sub001/internal/integrations/businessservice"
	"github.com/luizvb/gendaia-sub001/pkg/ptr"
	"github.com/luizvb/gendaia-sub001/pkg/types"
)

// UseCase use case создания записи - admission control движка доступности
//
// Read path (get_availability) advisory и не резервирует слот, поэтому
// проверка конфликтов повторяется здесь в момент коммита: перечитываем
// активные записи с блокировкой внутри сериализуемой транзакции и вставляем
// только при отсутствии пересечений. Источником взаимного исключения служит
// хранилище (транзакция + exclusion constraint), а не in-process блокировки -
// инстансов сервиса может быть несколько
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	businessClient  BusinessServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	businessClient BusinessServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		businessClient:  businessClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%d, business=%d, professional=%d, service=%d, date=%s, time=%s",
		req.ClientID, req.BusinessID, req.ProfessionalID, req.ServiceID,
		req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем бизнес (тенант) и его таймзону
	business, err := uc.businessClient.GetBusiness(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, businessClient.ErrBusinessNotFound) {
			uc.logger.Warn("CreateAppointment: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	loc, err := uc.resolveLocation(business.Timezone)
	if err != nil {
		uc.logger.Error("CreateAppointment: business id=%d has invalid timezone %q", req.BusinessID, business.Timezone)
		return nil, err
	}

	// 3. Получаем услугу - длительность записи определяется каталогом
	service, err := uc.businessClient.GetService(ctx, req.BusinessID, req.ServiceID)
	if err != nil {
		if errors.Is(err, businessClient.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if service.DurationMinutes <= 0 {
		uc.logger.Warn("CreateAppointment: service id=%d has non-positive duration", req.ServiceID)
		return nil, fmt.Errorf("%w: service duration must be positive", ErrInvalidInput)
	}

	// Профессионал должен принадлежать бизнесу
	if _, err := uc.businessClient.GetProfessional(ctx, req.BusinessID, req.ProfessionalID); err != nil {
		if errors.Is(err, businessClient.ErrProfessionalNotFound) {
			uc.logger.Warn("CreateAppointment: professional id=%d not found in business id=%d",
				req.ProfessionalID, req.BusinessID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	// 4. Проверяем дату в таймзоне бизнеса
	now := uc.timeProvider.Now().In(loc)
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateAppointment: date validation failed: %v", err)
		return nil, err
	}

	// 5. Собираем предлагаемый интервал как абсолютные инстанты
	start, err := domain.CombineDateTime(req.Date, req.StartTime, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	duration := time.Duration(service.DurationMinutes) * time.Minute
	proposed := domain.NewInterval(start, duration)

	// Уже прошедшее время нельзя занять даже на сегодняшнюю дату
	if err := validateStartInstant(proposed.Start, now); err != nil {
		uc.logger.Warn("CreateAppointment: start %s on %s has already passed",
			req.StartTime, req.Date.Format(domain.DateFormat))
		return nil, err
	}

	var result *domain.Appointment

	// 6. Admission внутри одной сериализуемой транзакции: перечитать - проверить - вставить.
	// При инфраструктурной ошибке транзакция откатывается целиком, частичное
	// состояние не публикуется
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Расписание на день недели, при отсутствии - дефолтное окно
		sched, err := uc.scheduleRepo.GetByWeekday(txCtx, req.BusinessID, ptr.Ptr(req.ProfessionalID), req.Date.Weekday())
		if err != nil {
			if !errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
				uc.logger.Error("CreateAppointment: failed to get schedule: %v", err)
				return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
			}
			sched = domain.DefaultDaySchedule(req.BusinessID, req.Date.Weekday())
		}

		if !sched.IsOpen {
			uc.logger.Warn("CreateAppointment: business id=%d is closed on %s", req.BusinessID, req.Date.Weekday())
			return ErrBusinessClosed
		}

		window, err := domain.NewTimeWindow(req.Date, sched.OpenTime, sched.CloseTime, sched.SlotGranularityMinutes, loc)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
		}

		if err := validateWithinWindow(proposed, window); err != nil {
			uc.logger.Warn("CreateAppointment: interval %s-%s is outside working hours %s-%s",
				req.StartTime, types.NewTimeString(proposed.End.In(loc)), sched.OpenTime, sched.CloseTime)
			return err
		}

		// 6.2. Перечитываем активные записи профессионала с блокировкой (FOR UPDATE)
		filter := domain.AppointmentsFilter{
			BusinessID:     req.BusinessID,
			ProfessionalID: ptr.Ptr(req.ProfessionalID),
			StartDate:      &req.Date,
			EndDate:        &req.Date,
			OnlyBlocking:   true,
		}

		appointments, err := uc.appointmentRepo.GetWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 6.3. Проверка конфликтов по полуоткрытому правилу
		if hasConflict(proposed, appointments) {
			// Ожидаемый исход гонки, не ошибка системы
			uc.logger.Info("CreateAppointment: slot %s taken for professional=%d on %s",
				req.StartTime, req.ProfessionalID, req.Date.Format(domain.DateFormat))
			return ErrSlotNotAvailable
		}

		// 6.4. Вставляем запись; exclusion constraint в БД страхует от гонки
		// между инстансами сервиса
		appointment := &domain.Appointment{
			BusinessID:     req.BusinessID,
			ProfessionalID: req.ProfessionalID,
			ServiceID:      req.ServiceID,
			ClientID:       req.ClientID,
			Date:           req.Date,
			StartTime:      proposed.Start,
			EndTime:        proposed.End,
			Status:         domain.StatusScheduled,
			// Денормализация данных услуги
			ServiceName:  service.Name,
			ServicePrice: getServicePrice(service.Price),
			ClientName:   req.ClientName,
			Notes:        req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			if errors.Is(err, apptRepo.ErrSlotTaken) {
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		ClientID:        result.ClientID,
		BusinessID:      result.BusinessID,
		ProfessionalID:  result.ProfessionalID,
		ServiceID:       result.ServiceID,
		Date:            result.Date,
		StartTime:       types.NewTimeString(result.StartTime.In(loc)),
		EndTime:         types.NewTimeString(result.EndTime.In(loc)),
		DurationMinutes: result.DurationMinutes(),
		Status:          string(result.Status),
		ServiceName:     result.ServiceName,
		ServicePrice:    result.ServicePrice,
		ClientName:      result.ClientName,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// resolveLocation загружает таймзону бизнеса, пустое значение заменяется дефолтом
func (uc *UseCase) resolveLocation(timezone string) (*time.Location, error) {
	if timezone == "" {
		timezone = domain.DefaultTimezone
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown timezone %q", ErrInvalidSchedule, timezone)
	}

	return loc, nil
}
