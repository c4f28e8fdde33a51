package get_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luizvb/gendaia-sub001/internal/domain"
	scheduleRepo "github.com/luizvb/gendaia-sub001/internal/infra/storage/schedule"
	"github.com/luizvb/gendaia-sub001/internal/integrations/businessservice"
	"github.com/luizvb/gendaia-sub001/pkg/types"
)

// ==================== Фейковые зависимости ====================

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
	lastFilter   domain.AppointmentsFilter
}

func (f *fakeAppointmentRepo) GetWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	return f.appointments, nil
}

type fakeScheduleRepo struct {
	schedule *domain.DaySchedule
	err      error
}

func (f *fakeScheduleRepo) GetByWeekday(_ context.Context, _ int64, _ *int64, _ time.Weekday) (*domain.DaySchedule, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.schedule == nil {
		return nil, scheduleRepo.ErrScheduleNotFound
	}
	return f.schedule, nil
}

type fakeBusinessClient struct {
	business *businessservice.Business
	err      error
}

func (f *fakeBusinessClient) GetBusiness(_ context.Context, _ int64) (*businessservice.Business, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.business, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// ==================== Хелперы ====================

var saoPaulo = mustLoadLocation("America/Sao_Paulo")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// Будущая дата относительно фиксированного "сейчас" (2025-11-01)
var (
	testNow  = time.Date(2025, 11, 1, 12, 0, 0, 0, saoPaulo)
	testDate = time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
)

func localTime(hour, minute int) time.Time {
	return time.Date(2025, 11, 10, hour, minute, 0, 0, saoPaulo)
}

func scheduledAppt(start, end time.Time) *domain.Appointment {
	return &domain.Appointment{
		BusinessID:     1,
		ProfessionalID: 10,
		StartTime:      start,
		EndTime:        end,
		Status:         domain.StatusScheduled,
	}
}

func newTestUseCase(apptRepo *fakeAppointmentRepo, schedRepo *fakeScheduleRepo, client *fakeBusinessClient) *UseCase {
	uc := NewUseCase(apptRepo, schedRepo, client, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func defaultBusiness() *businessservice.Business {
	return &businessservice.Business{
		ID:       1,
		Name:     "Barbearia Central",
		Timezone: "America/Sao_Paulo",
	}
}

func validRequest() *Request {
	return &Request{
		BusinessID:             1,
		ProfessionalID:         10,
		ServiceDurationMinutes: 30,
		Date:                   testDate,
	}
}

// ==================== Тесты ====================

func TestExecute_OpenDayWithBooking(t *testing.T) {
	// Окно 09:00-19:00, шаг 30, услуга 60 минут, занято [10:00, 11:00)
	apptRepo := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{scheduledAppt(localTime(10, 0), localTime(11, 0))},
	}
	uc := newTestUseCase(apptRepo, &fakeScheduleRepo{}, &fakeBusinessClient{business: defaultBusiness()})

	req := validRequest()
	req.ServiceDurationMinutes = 60

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Contains(t, resp.AvailableSlots, types.TimeString("09:00"))
	assert.Contains(t, resp.AvailableSlots, types.TimeString("11:00"))
	assert.Contains(t, resp.AvailableSlots, types.TimeString("11:30"))
	// 09:30+60 пересекается с занятым интервалом, 10:00 и 10:30 тоже
	assert.NotContains(t, resp.AvailableSlots, types.TimeString("09:30"))
	assert.NotContains(t, resp.AvailableSlots, types.TimeString("10:00"))
	assert.NotContains(t, resp.AvailableSlots, types.TimeString("10:30"))
	// Последний валидный старт: 18:00 + 60 минут = 19:00 (конец окна)
	assert.Equal(t, types.TimeString("18:00"), resp.AvailableSlots[len(resp.AvailableSlots)-1])

	assert.Equal(t, "America/Sao_Paulo", resp.Timezone)
	assert.True(t, apptRepo.lastFilter.OnlyBlocking)
}

func TestExecute_NoBookings(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeScheduleRepo{}, &fakeBusinessClient{business: defaultBusiness()})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// 09:00-19:00 с шагом 30 и услугой 30 минут: 20 слотов
	require.Len(t, resp.AvailableSlots, 20)
	assert.Equal(t, types.TimeString("09:00"), resp.AvailableSlots[0])
	assert.Equal(t, types.TimeString("18:30"), resp.AvailableSlots[19])
}

func TestExecute_Idempotent(t *testing.T) {
	apptRepo := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{scheduledAppt(localTime(14, 0), localTime(15, 0))},
	}
	uc := newTestUseCase(apptRepo, &fakeScheduleRepo{}, &fakeBusinessClient{business: defaultBusiness()})

	first, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, first.AvailableSlots, second.AvailableSlots)
}

func TestExecute_DurationExceedsWindow(t *testing.T) {
	sched := &domain.DaySchedule{
		BusinessID:             1,
		Weekday:                testDate.Weekday(),
		IsOpen:                 true,
		OpenTime:               "09:00",
		CloseTime:              "10:00",
		SlotGranularityMinutes: 30,
	}
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeScheduleRepo{schedule: sched}, &fakeBusinessClient{business: defaultBusiness()})

	req := validRequest()
	req.ServiceDurationMinutes = 120

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, resp.AvailableSlots)
}

func TestExecute_TailSlotsCutOff(t *testing.T) {
	// Услуга 120 минут: последний валидный старт 17:00, хвост 17:30-18:30 отрезан
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeScheduleRepo{}, &fakeBusinessClient{business: defaultBusiness()})

	req := validRequest()
	req.ServiceDurationMinutes = 120

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, types.TimeString("17:00"), resp.AvailableSlots[len(resp.AvailableSlots)-1])
	assert.NotContains(t, resp.AvailableSlots, types.TimeString("17:30"))
	assert.NotContains(t, resp.AvailableSlots, types.TimeString("18:00"))
}

func TestExecute_ClosedDay(t *testing.T) {
	sched := &domain.DaySchedule{
		BusinessID: 1,
		Weekday:    testDate.Weekday(),
		IsOpen:     false,
	}
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeScheduleRepo{schedule: sched}, &fakeBusinessClient{business: defaultBusiness()})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotNil(t, resp.AvailableSlots)
	assert.Empty(t, resp.AvailableSlots)
}

func TestExecute_SameDayPastSlotsExcluded(t *testing.T) {
	// Запрос на сегодняшнюю дату в 12:00 по времени бизнеса:
	// утренние слоты уже прошли и не предлагаются
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeScheduleRepo{}, &fakeBusinessClient{business: defaultBusiness()})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2025, 11, 10, 12, 0, 0, 0, saoPaulo)}

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.NotEmpty(t, resp.AvailableSlots)
	// Слот ровно в "сейчас" еще доступен, все более ранние - нет
	assert.Equal(t, types.TimeString("12:00"), resp.AvailableSlots[0])
	assert.NotContains(t, resp.AvailableSlots, types.TimeString("09:00"))
	assert.NotContains(t, resp.AvailableSlots, types.TimeString("11:30"))
	assert.Equal(t, types.TimeString("18:30"), resp.AvailableSlots[len(resp.AvailableSlots)-1])
}

func TestExecute_SameDayAllSlotsPassed(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeScheduleRepo{}, &fakeBusinessClient{business: defaultBusiness()})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2025, 11, 10, 19, 0, 0, 0, saoPaulo)}

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Empty(t, resp.AvailableSlots)
}

func TestExecute_PastDate(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeScheduleRepo{}, &fakeBusinessClient{business: defaultBusiness()})

	req := validRequest()
	req.Date = time.Date(2025, 10, 31, 0, 0, 0, 0, time.UTC)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, resp.AvailableSlots)
}

func TestExecute_DefaultDurationFallsBackToGranularity(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeScheduleRepo{}, &fakeBusinessClient{business: defaultBusiness()})

	req := validRequest()
	req.ServiceDurationMinutes = 0

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	// Fallback на шаг сетки (30 минут) дает полную сетку из 20 слотов
	assert.Len(t, resp.AvailableSlots, 20)
}

func TestExecute_BusinessNotFound(t *testing.T) {
	client := &fakeBusinessClient{err: businessservice.ErrBusinessNotFound}
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeScheduleRepo{}, client)

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrBusinessNotFound)
}

func TestExecute_RepositoryErrorPropagates(t *testing.T) {
	// Ошибка хранилища не должна маскироваться под пустой список слотов
	apptRepo := &fakeAppointmentRepo{err: errors.New("connection refused")}
	uc := newTestUseCase(apptRepo, &fakeScheduleRepo{}, &fakeBusinessClient{business: defaultBusiness()})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrInternal)
	assert.Nil(t, resp)
}

func TestExecute_ScheduleRepositoryErrorPropagates(t *testing.T) {
	schedRepo := &fakeScheduleRepo{err: errors.New("connection refused")}
	uc := newTestUseCase(&fakeAppointmentRepo{}, schedRepo, &fakeBusinessClient{business: defaultBusiness()})

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrInternal)
}

func TestExecute_InvalidScheduleConfiguration(t *testing.T) {
	// close <= open - ошибка конфигурации, а не пустой ответ
	sched := &domain.DaySchedule{
		BusinessID:             1,
		Weekday:                testDate.Weekday(),
		IsOpen:                 true,
		OpenTime:               "19:00",
		CloseTime:              "09:00",
		SlotGranularityMinutes: 30,
	}
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeScheduleRepo{schedule: sched}, &fakeBusinessClient{business: defaultBusiness()})

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrInvalidSchedule)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeScheduleRepo{}, &fakeBusinessClient{business: defaultBusiness()})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "zero business id", mutate: func(r *Request) { r.BusinessID = 0 }},
		{name: "zero professional id", mutate: func(r *Request) { r.ProfessionalID = 0 }},
		{name: "zero date", mutate: func(r *Request) { r.Date = time.Time{} }},
		{name: "negative duration", mutate: func(r *Request) { r.ServiceDurationMinutes = -10 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
