package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luizvb/gendaia-sub001/internal/domain"
	"github.com/luizvb/gendaia-sub001/internal/service/schedule/models"
	"github.com/luizvb/gendaia-sub001/pkg/ptr"
)

type fakeScheduleRepo struct {
	schedules []*domain.DaySchedule
	getErr    error
	upserted  []*domain.DaySchedule
}

func (f *fakeScheduleRepo) GetByWeekday(_ context.Context, businessID int64, _ *int64, weekday time.Weekday) (*domain.DaySchedule, error) {
	for _, s := range f.schedules {
		if s.BusinessID == businessID && s.Weekday == weekday {
			return s, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeScheduleRepo) GetWeek(_ context.Context, businessID int64) ([]*domain.DaySchedule, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	var result []*domain.DaySchedule
	for _, s := range f.schedules {
		if s.BusinessID == businessID {
			result = append(result, s)
		}
	}
	return result, nil
}

func (f *fakeScheduleRepo) Upsert(_ context.Context, sched *domain.DaySchedule) (*domain.DaySchedule, error) {
	f.upserted = append(f.upserted, sched)
	stored := *sched
	stored.ID = int64(len(f.upserted))
	f.schedules = append(f.schedules, &stored)
	return &stored, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestGetWeek_FillsDefaults(t *testing.T) {
	// Только понедельник настроен явно, остальные дни - дефолтное окно
	repo := &fakeScheduleRepo{
		schedules: []*domain.DaySchedule{
			{
				ID:                     1,
				BusinessID:             1,
				Weekday:                time.Monday,
				IsOpen:                 true,
				OpenTime:               "08:00",
				CloseTime:              "14:00",
				SlotGranularityMinutes: 15,
			},
		},
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetWeek(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, resp.Days, 7)

	monday := resp.Days[int(time.Monday)]
	assert.Equal(t, "08:00", monday.OpenTime)
	assert.Equal(t, "14:00", monday.CloseTime)
	assert.Equal(t, 15, monday.SlotGranularityMinutes)
	assert.False(t, monday.IsDefault)

	sunday := resp.Days[int(time.Sunday)]
	assert.Equal(t, domain.DefaultOpenTime, sunday.OpenTime)
	assert.Equal(t, domain.DefaultCloseTime, sunday.CloseTime)
	assert.Equal(t, domain.DefaultSlotGranularityMinutes, sunday.SlotGranularityMinutes)
	assert.True(t, sunday.IsDefault)
}

func TestGetWeek_IncludesProfessionalRows(t *testing.T) {
	repo := &fakeScheduleRepo{
		schedules: []*domain.DaySchedule{
			{
				ID:                     1,
				BusinessID:             1,
				ProfessionalID:         ptr.Ptr(int64(10)),
				Weekday:                time.Tuesday,
				IsOpen:                 true,
				OpenTime:               "12:00",
				CloseTime:              "20:00",
				SlotGranularityMinutes: 30,
			},
		},
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetWeek(context.Background(), 1)
	require.NoError(t, err)
	// 7 business-wide дней + 1 строка профессионала
	require.Len(t, resp.Days, 8)

	professional := resp.Days[7]
	require.NotNil(t, professional.ProfessionalID)
	assert.Equal(t, int64(10), *professional.ProfessionalID)
	assert.Equal(t, "12:00", professional.OpenTime)
}

func TestGetWeek_RepositoryError(t *testing.T) {
	repo := &fakeScheduleRepo{getErr: errors.New("connection refused")}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetWeek(context.Background(), 1)
	require.ErrorIs(t, err, ErrInternal)
}

func TestUpdateWeek_Success(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := NewService(repo, nopLogger{})

	req := &models.UpdateWeekRequest{
		BusinessID: 1,
		Days: []models.DayScheduleInput{
			{
				Weekday:                int(time.Monday),
				IsOpen:                 true,
				OpenTime:               ptr.Ptr("10:00"),
				CloseTime:              ptr.Ptr("18:00"),
				SlotGranularityMinutes: ptr.Ptr(20),
			},
			{Weekday: int(time.Sunday), IsOpen: false},
		},
	}

	resp, err := svc.UpdateWeek(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, repo.upserted, 2)

	monday := resp.Days[int(time.Monday)]
	assert.Equal(t, "10:00", monday.OpenTime)
	assert.Equal(t, 20, monday.SlotGranularityMinutes)

	sunday := resp.Days[int(time.Sunday)]
	assert.False(t, sunday.IsOpen)
}

func TestUpdateWeek_ValidationErrors(t *testing.T) {
	svc := NewService(&fakeScheduleRepo{}, nopLogger{})

	openDay := func(open, close string, granularity int) models.DayScheduleInput {
		return models.DayScheduleInput{
			Weekday:                int(time.Monday),
			IsOpen:                 true,
			OpenTime:               ptr.Ptr(open),
			CloseTime:              ptr.Ptr(close),
			SlotGranularityMinutes: ptr.Ptr(granularity),
		}
	}

	tests := []struct {
		name    string
		day     models.DayScheduleInput
		wantErr error
	}{
		{name: "close before open", day: openDay("18:00", "09:00", 30), wantErr: ErrInvalidWindow},
		{name: "close equals open", day: openDay("09:00", "09:00", 30), wantErr: ErrInvalidWindow},
		{name: "granularity too small", day: openDay("09:00", "18:00", 1), wantErr: ErrInvalidGranularity},
		{name: "granularity too large", day: openDay("09:00", "18:00", 600), wantErr: ErrInvalidGranularity},
		{name: "malformed open time", day: openDay("9am", "18:00", 30), wantErr: ErrInvalidInput},
		{
			name:    "bad weekday",
			day:     models.DayScheduleInput{Weekday: 7, IsOpen: false},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &models.UpdateWeekRequest{
				BusinessID: 1,
				Days:       []models.DayScheduleInput{tt.day},
			}

			_, err := svc.UpdateWeek(context.Background(), req)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUpdateWeek_EmptyDays(t *testing.T) {
	svc := NewService(&fakeScheduleRepo{}, nopLogger{})

	_, err := svc.UpdateWeek(context.Background(), &models.UpdateWeekRequest{BusinessID: 1})
	require.ErrorIs(t, err, ErrInvalidInput)
}
