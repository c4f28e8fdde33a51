package domain

import (
	"time"

	"github.com/luizvb/gendaia-sub001/pkg/types"
)

// DaySchedule расписание работы бизнеса на день недели
// ProfessionalID == nil означает расписание для всех профессионалов бизнеса;
// строка с конкретным ProfessionalID имеет приоритет над общей
type DaySchedule struct {
	ID                     int64
	BusinessID             int64
	ProfessionalID         *int64
	Weekday                time.Weekday
	IsOpen                 bool
	OpenTime               types.TimeString
	CloseTime              types.TimeString
	SlotGranularityMinutes int
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// IsBusinessWide returns true if the schedule applies to all professionals
func (s *DaySchedule) IsBusinessWide() bool {
	return s.ProfessionalID == nil
}

// DefaultDaySchedule возвращает дефолтное расписание на день недели
// (окно 09:00-19:00, шаг 30 минут)
func DefaultDaySchedule(businessID int64, weekday time.Weekday) *DaySchedule {
	return &DaySchedule{
		BusinessID:             businessID,
		Weekday:                weekday,
		IsOpen:                 true,
		OpenTime:               types.TimeString(DefaultOpenTime),
		CloseTime:              types.TimeString(DefaultCloseTime),
		SlotGranularityMinutes: DefaultSlotGranularityMinutes,
	}
}
