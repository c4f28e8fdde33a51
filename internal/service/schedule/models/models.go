package models

import (
	"time"

	"github.com/luizvb/gendaia-sub001/internal/domain"
	"github.com/luizvb/gendaia-sub001/pkg/types"
)

// Request модели

// DayScheduleInput расписание на один день недели в запросе обновления
type DayScheduleInput struct {
	Weekday                int     `json:"weekday"` // 0 = воскресенье ... 6 = суббота
	ProfessionalID         *int64  `json:"professionalId,omitempty"`
	IsOpen                 bool    `json:"isOpen"`
	OpenTime               *string `json:"openTime,omitempty"`               // "09:00", обязателен при isOpen
	CloseTime              *string `json:"closeTime,omitempty"`              // "19:00", обязателен при isOpen
	SlotGranularityMinutes *int    `json:"slotGranularityMinutes,omitempty"` // nil = дефолтный шаг
}

// UpdateWeekRequest запрос на обновление недельного расписания бизнеса
type UpdateWeekRequest struct {
	BusinessID int64              `json:"businessId"`
	Days       []DayScheduleInput `json:"days"`
}

// ToDomainSchedule конвертирует input в domain модель
func (d *DayScheduleInput) ToDomainSchedule(businessID int64) *domain.DaySchedule {
	sched := &domain.DaySchedule{
		BusinessID:             businessID,
		ProfessionalID:         d.ProfessionalID,
		Weekday:                time.Weekday(d.Weekday),
		IsOpen:                 d.IsOpen,
		OpenTime:               types.TimeString(domain.DefaultOpenTime),
		CloseTime:              types.TimeString(domain.DefaultCloseTime),
		SlotGranularityMinutes: domain.DefaultSlotGranularityMinutes,
	}

	if d.OpenTime != nil {
		sched.OpenTime = types.TimeString(*d.OpenTime)
	}
	if d.CloseTime != nil {
		sched.CloseTime = types.TimeString(*d.CloseTime)
	}
	if d.SlotGranularityMinutes != nil {
		sched.SlotGranularityMinutes = *d.SlotGranularityMinutes
	}

	return sched
}

// Response модели

// DayScheduleResponse расписание на один день недели
type DayScheduleResponse struct {
	Weekday                int    `json:"weekday"`
	WeekdayName            string `json:"weekdayName"` // "Monday"
	ProfessionalID         *int64 `json:"professionalId,omitempty"`
	IsOpen                 bool   `json:"isOpen"`
	OpenTime               string `json:"openTime"`
	CloseTime              string `json:"closeTime"`
	SlotGranularityMinutes int    `json:"slotGranularityMinutes"`
	IsDefault              bool   `json:"isDefault"` // true, если строки в БД нет и показано дефолтное окно
}

// WeekScheduleResponse недельное расписание бизнеса
type WeekScheduleResponse struct {
	BusinessID int64                 `json:"businessId"`
	Days       []DayScheduleResponse `json:"days"`
}

// FromDomainSchedule конвертирует domain модель в DTO
func FromDomainSchedule(s *domain.DaySchedule) DayScheduleResponse {
	return DayScheduleResponse{
		Weekday:                int(s.Weekday),
		WeekdayName:            s.Weekday.String(),
		ProfessionalID:         s.ProfessionalID,
		IsOpen:                 s.IsOpen,
		OpenTime:               s.OpenTime.String(),
		CloseTime:              s.CloseTime.String(),
		SlotGranularityMinutes: s.SlotGranularityMinutes,
		IsDefault:              s.ID == 0,
	}
}
