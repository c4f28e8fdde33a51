package schedule

import (
	"context"
	"time"

	"github.com/luizvb/gendaia-sub001/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписаний работы
type ScheduleRepository interface {
	GetByWeekday(ctx context.Context, businessID int64, professionalID *int64, weekday time.Weekday) (*domain.DaySchedule, error)
	GetWeek(ctx context.Context, businessID int64) ([]*domain.DaySchedule, error)
	Upsert(ctx context.Context, sched *domain.DaySchedule) (*domain.DaySchedule, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
