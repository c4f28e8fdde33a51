package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/luizvb/gendaia-sub001/internal/domain"
	"github.com/luizvb/gendaia-sub001/internal/service/schedule/models"
)

// Service сервис для работы с расписаниями работы бизнеса
type Service struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// GetWeek получает недельное расписание бизнеса
// Дни недели без строки в БД заполняются дефолтным окном - ответ всегда
// содержит все 7 дней (business-wide строки; строки конкретных профессионалов
// добавляются после них)
func (s *Service) GetWeek(ctx context.Context, businessID int64) (*models.WeekScheduleResponse, error) {
	s.logger.Info("GetWeek: fetching week schedule for business=%d", businessID)

	if businessID <= 0 {
		return nil, fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}

	schedules, err := s.scheduleRepo.GetWeek(ctx, businessID)
	if err != nil {
		s.logger.Error("GetWeek: repository error for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: GetWeek - repository error: %v", ErrInternal, err)
	}

	// Business-wide строки по дням недели
	businessWide := make(map[time.Weekday]*domain.DaySchedule)
	var professional []*domain.DaySchedule
	for _, sched := range schedules {
		if sched.IsBusinessWide() {
			businessWide[sched.Weekday] = sched
		} else {
			professional = append(professional, sched)
		}
	}

	resp := &models.WeekScheduleResponse{
		BusinessID: businessID,
		Days:       make([]models.DayScheduleResponse, 0, 7+len(professional)),
	}

	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		sched, ok := businessWide[weekday]
		if !ok {
			sched = domain.DefaultDaySchedule(businessID, weekday)
		}
		resp.Days = append(resp.Days, models.FromDomainSchedule(sched))
	}

	for _, sched := range professional {
		resp.Days = append(resp.Days, models.FromDomainSchedule(sched))
	}

	s.logger.Info("GetWeek: successfully fetched schedule for business=%d (%d custom rows)", businessID, len(schedules))
	return resp, nil
}

// UpdateWeek обновляет недельное расписание бизнеса
// Каждый день валидируется и записывается через upsert; дни, не указанные
// в запросе, не затрагиваются
func (s *Service) UpdateWeek(ctx context.Context, req *models.UpdateWeekRequest) (*models.WeekScheduleResponse, error) {
	s.logger.Info("UpdateWeek: updating schedule for business=%d (%d days)", req.BusinessID, len(req.Days))

	if req.BusinessID <= 0 {
		return nil, fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}
	if len(req.Days) == 0 {
		return nil, fmt.Errorf("%w: days must not be empty", ErrInvalidInput)
	}

	for i := range req.Days {
		if err := s.validateDay(&req.Days[i]); err != nil {
			s.logger.Warn("UpdateWeek: invalid day schedule for business=%d, weekday=%d: %v",
				req.BusinessID, req.Days[i].Weekday, err)
			return nil, err
		}
	}

	for i := range req.Days {
		sched := req.Days[i].ToDomainSchedule(req.BusinessID)
		if _, err := s.scheduleRepo.Upsert(ctx, sched); err != nil {
			s.logger.Error("UpdateWeek: repository error for business=%d, weekday=%s: %v",
				req.BusinessID, sched.Weekday, err)
			return nil, fmt.Errorf("%w: UpdateWeek - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("UpdateWeek: successfully updated schedule for business=%d", req.BusinessID)
	return s.GetWeek(ctx, req.BusinessID)
}

// validateDay проверяет корректность расписания на один день
func (s *Service) validateDay(day *models.DayScheduleInput) error {
	if day.Weekday < 0 || day.Weekday > 6 {
		return fmt.Errorf("%w: weekday must be in range 0-6", ErrInvalidInput)
	}

	if day.ProfessionalID != nil && *day.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionalId must be positive", ErrInvalidInput)
	}

	// Для закрытого дня окно не проверяется
	if !day.IsOpen {
		return nil
	}

	sched := day.ToDomainSchedule(0)

	if err := sched.OpenTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid openTime: %v", ErrInvalidInput, err)
	}
	if err := sched.CloseTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid closeTime: %v", ErrInvalidInput, err)
	}

	if !sched.OpenTime.IsBefore(sched.CloseTime) {
		return fmt.Errorf("%w: %s >= %s", ErrInvalidWindow, sched.OpenTime, sched.CloseTime)
	}

	if sched.SlotGranularityMinutes < domain.MinSlotGranularityMinutes ||
		sched.SlotGranularityMinutes > domain.MaxSlotGranularityMinutes {
		return fmt.Errorf("%w: granularity must be in range %d-%d minutes",
			ErrInvalidGranularity, domain.MinSlotGranularityMinutes, domain.MaxSlotGranularityMinutes)
	}

	return nil
}
