package get_business_hours

import (
	"context"

	"github.com/luizvb/gendaia-sub001/internal/service/schedule/models"
)

type ScheduleService interface {
	GetWeek(ctx context.Context, businessID int64) (*models.WeekScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
