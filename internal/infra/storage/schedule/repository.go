package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/luizvb/gendaia-sub001/internal/domain"
	"github.com/luizvb/gendaia-sub001/pkg/dbmetrics"
	"github.com/luizvb/gendaia-sub001/pkg/psqlbuilder"
)

var scheduleColumns = []string{
	"id",
	"business_id",
	"professional_id",
	"weekday",
	"is_open",
	"open_time",
	"close_time",
	"slot_granularity_minutes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с расписанием работы бизнесов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByWeekday получает расписание бизнеса на день недели с учетом иерархии:
// 1. Строка для конкретного профессионала (business_id, professional_id, weekday)
// 2. Строка для всего бизнеса (business_id, NULL, weekday)
// Если ни одной строки нет, возвращает ErrScheduleNotFound - дефолтное окно
// подставляет вызывающий слой
func (r *Repository) GetByWeekday(ctx context.Context, businessID int64, professionalID *int64, weekday time.Weekday) (*domain.DaySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(scheduleColumns...).
		From("business_hours").
		Where(squirrel.Eq{"business_id": businessID, "weekday": int(weekday)})

	if professionalID != nil {
		// Строка профессионала приоритетнее общей строки бизнеса
		selectBuilder = selectBuilder.
			Where(squirrel.Or{
				squirrel.Eq{"professional_id": *professionalID},
				squirrel.Eq{"professional_id": nil},
			}).
			OrderBy("professional_id NULLS LAST")
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"professional_id": nil})
	}

	query, args, err := selectBuilder.Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByWeekday - build select query: %v", ErrBuildQuery, err)
	}

	sched, err := r.scanSchedule(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByWeekday - scan schedule: %v", ErrScanRow, err)
	}

	return sched, nil
}

// GetWeek получает все строки расписания бизнеса (общие и per-professional)
func (r *Repository) GetWeek(ctx context.Context, businessID int64) ([]*domain.DaySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("business_hours").
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("weekday ASC, professional_id NULLS FIRST").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWeek - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeek - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	schedules := make([]*domain.DaySchedule, 0)
	for rows.Next() {
		sched, err := r.scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetWeek - scan row: %v", ErrScanRow, err)
		}
		schedules = append(schedules, sched)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWeek - rows error: %v", ErrScanRow, err)
	}

	return schedules, nil
}

// Upsert создает или обновляет строку расписания на день недели
func (r *Repository) Upsert(ctx context.Context, sched *domain.DaySchedule) (*domain.DaySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("business_hours").
		Columns(
			"business_id",
			"professional_id",
			"weekday",
			"is_open",
			"open_time",
			"close_time",
			"slot_granularity_minutes",
		).
		Values(
			sched.BusinessID,
			sched.ProfessionalID,
			int(sched.Weekday),
			sched.IsOpen,
			sched.OpenTime,
			sched.CloseTime,
			sched.SlotGranularityMinutes,
		).
		Suffix(`ON CONFLICT (business_id, COALESCE(professional_id, 0), weekday)
			DO UPDATE SET
				is_open = EXCLUDED.is_open,
				open_time = EXCLUDED.open_time,
				close_time = EXCLUDED.close_time,
				slot_granularity_minutes = EXCLUDED.slot_granularity_minutes,
				updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&sched.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	sched.CreatedAt = createdAt.Time
	sched.UpdatedAt = updatedAt.Time

	return sched, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanSchedule(row rowScanner) (*domain.DaySchedule, error) {
	var sched domain.DaySchedule
	var weekday int
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&sched.ID,
		&sched.BusinessID,
		&sched.ProfessionalID,
		&weekday,
		&sched.IsOpen,
		&sched.OpenTime,
		&sched.CloseTime,
		&sched.SlotGranularityMinutes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	sched.Weekday = time.Weekday(weekday)
	sched.CreatedAt = createdAt.Time
	sched.UpdatedAt = updatedAt.Time

	return &sched, nil
}
