package get_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/luizvb/gendaia-sub001/internal/domain"
	scheduleRepo "github.com/luizvb/gendaia-sub001/internal/infra/storage/schedule"
	businessClient "github.com/luizvb/gendaia-sub001/internal/integrations/businessservice"
	"github.com/luizvb/gendaia-sub001/pkg/ptr"
	"github.com/luizvb/gendaia-sub001/pkg/types"
)

// UseCase use case для получения доступных слотов для записи
//
// Результат advisory: он отражает состояние хранилища на момент чтения
// и не резервирует слот. Гарантию отсутствия пересечений дает только
// write path (create_appointment) внутри транзакции
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	businessClient  BusinessServiceClient
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	businessClient BusinessServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		businessClient:  businessClient,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: business=%d, professional=%d, duration=%d, date=%s",
		req.BusinessID, req.ProfessionalID, req.ServiceDurationMinutes, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем бизнес (тенант) и его таймзону
	business, err := uc.businessClient.GetBusiness(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, businessClient.ErrBusinessNotFound) {
			uc.logger.Warn("GetAvailability: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("GetAvailability: failed to get business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	// 3. Вся арифметика выполняется в таймзоне бизнеса
	loc, err := resolveLocation(business.Timezone)
	if err != nil {
		uc.logger.Error("GetAvailability: business id=%d has invalid timezone %q", req.BusinessID, business.Timezone)
		return nil, err
	}

	emptyResponse := &Response{
		BusinessID:     req.BusinessID,
		ProfessionalID: req.ProfessionalID,
		Date:           req.Date,
		Timezone:       loc.String(),
		AvailableSlots: []types.TimeString{},
	}

	// 4. Для прошедших дат слотов нет
	now := uc.timeProvider.Now().In(loc)
	if isDateInPast(req.Date, now) {
		uc.logger.Info("GetAvailability: date %s is in the past", req.Date.Format(domain.DateFormat))
		return emptyResponse, nil
	}

	// 5. Получаем расписание на день недели, при отсутствии - дефолтное окно
	sched, err := uc.scheduleRepo.GetByWeekday(ctx, req.BusinessID, ptr.Ptr(req.ProfessionalID), req.Date.Weekday())
	if err != nil {
		if !errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			uc.logger.Error("GetAvailability: failed to get schedule: %v", err)
			return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}
		sched = domain.DefaultDaySchedule(req.BusinessID, req.Date.Weekday())
		uc.logger.Info("GetAvailability: using default schedule for business=%d, weekday=%s",
			req.BusinessID, req.Date.Weekday())
	}

	// 6. Явно закрытый день - ноль кандидатов
	if !sched.IsOpen {
		uc.logger.Info("GetAvailability: business id=%d is closed on %s", req.BusinessID, req.Date.Weekday())
		return emptyResponse, nil
	}

	// 7. Резолвим окно работы в абсолютные инстанты
	window, err := domain.NewTimeWindow(req.Date, sched.OpenTime, sched.CloseTime, sched.SlotGranularityMinutes, loc)
	if err != nil {
		uc.logger.Error("GetAvailability: invalid schedule for business=%d, weekday=%s: %v",
			req.BusinessID, req.Date.Weekday(), err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	// Длительность по умолчанию - шаг сетки слотов
	durationMinutes := req.ServiceDurationMinutes
	if durationMinutes == 0 {
		durationMinutes = sched.SlotGranularityMinutes
	}
	duration := time.Duration(durationMinutes) * time.Minute

	// 8. Получаем активные записи профессионала на эту дату
	// Ошибки хранилища пробрасываются наверх, а не превращаются в "нет слотов"
	filter := domain.AppointmentsFilter{
		BusinessID:     req.BusinessID,
		ProfessionalID: ptr.Ptr(req.ProfessionalID),
		StartDate:      &req.Date,
		EndDate:        &req.Date,
		OnlyBlocking:   true,
	}

	appointments, err := uc.appointmentRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 9. Генерируем кандидатов и фильтруем по занятым интервалам.
	// Для сегодняшней даты уже прошедшие слоты не предлагаются
	candidates := window.Candidates(duration)
	if isSameDay(req.Date, now) {
		candidates = clampToNow(candidates, now)
	}
	available := freeSlots(candidates, duration, appointments)

	uc.logger.Info("GetAvailability: %d of %d slots available for business=%d, professional=%d, date=%s",
		len(available), len(candidates), req.BusinessID, req.ProfessionalID,
		req.Date.Format(domain.DateFormat))

	return &Response{
		BusinessID:     req.BusinessID,
		ProfessionalID: req.ProfessionalID,
		Date:           req.Date,
		Timezone:       loc.String(),
		AvailableSlots: formatSlots(available, loc),
	}, nil
}
