package get_availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luizvb/gendaia-sub001/internal/domain"
	"github.com/luizvb/gendaia-sub001/pkg/types"
)

func utc(hour, minute int) time.Time {
	return time.Date(2025, 11, 10, hour, minute, 0, 0, time.UTC)
}

func scheduled(start, end time.Time) *domain.Appointment {
	return &domain.Appointment{
		StartTime: start,
		EndTime:   end,
		Status:    domain.StatusScheduled,
	}
}

func TestFreeSlots_BoundaryCases(t *testing.T) {
	// Занят интервал [10:00, 10:30)
	appointments := []*domain.Appointment{scheduled(utc(10, 0), utc(10, 30))}

	candidates := []time.Time{utc(9, 30), utc(9, 45), utc(10, 0), utc(10, 30)}
	free := freeSlots(candidates, 30*time.Minute, appointments)

	// 09:30 заканчивается ровно в 10:00 - граница, не конфликт
	assert.Contains(t, free, utc(9, 30))
	// 09:45 пересекается с [10:00,10:30)
	assert.NotContains(t, free, utc(9, 45))
	// 10:00 занят целиком
	assert.NotContains(t, free, utc(10, 0))
	// 10:30 начинается ровно в конце занятого интервала - валиден
	assert.Contains(t, free, utc(10, 30))
}

func TestFreeSlots_NonBlockingStatusesIgnored(t *testing.T) {
	appointments := []*domain.Appointment{
		{StartTime: utc(10, 0), EndTime: utc(10, 30), Status: domain.StatusCancelled},
		{StartTime: utc(11, 0), EndTime: utc(11, 30), Status: domain.StatusCompleted},
	}

	candidates := []time.Time{utc(10, 0), utc(11, 0)}
	free := freeSlots(candidates, 30*time.Minute, appointments)

	assert.Equal(t, candidates, free)
}

func TestFreeSlots_EmptyAppointments(t *testing.T) {
	candidates := []time.Time{utc(9, 0), utc(9, 30), utc(10, 0)}
	free := freeSlots(candidates, 30*time.Minute, nil)

	assert.Equal(t, candidates, free)
}

func TestFreeSlots_SortedScanConsistency(t *testing.T) {
	// Несколько записей подряд: сканирование с ранним выходом должно давать
	// тот же результат, что и наивная попарная проверка
	appointments := []*domain.Appointment{
		scheduled(utc(9, 0), utc(9, 30)),
		scheduled(utc(10, 0), utc(11, 0)),
		scheduled(utc(12, 15), utc(12, 45)),
		scheduled(utc(15, 0), utc(16, 30)),
	}

	window, err := domain.NewTimeWindow(utc(0, 0), "09:00", "19:00", 15, time.UTC)
	require.NoError(t, err)

	duration := 45 * time.Minute
	candidates := window.Candidates(duration)
	free := freeSlots(candidates, duration, appointments)

	for _, start := range candidates {
		proposed := domain.NewInterval(start, duration)
		conflicts := false
		for _, appt := range appointments {
			if proposed.Overlaps(appt.Interval()) {
				conflicts = true
				break
			}
		}
		if conflicts {
			assert.NotContains(t, free, start)
		} else {
			assert.Contains(t, free, start)
		}
	}
}

func TestClampToNow(t *testing.T) {
	candidates := []time.Time{utc(9, 0), utc(9, 30), utc(10, 0), utc(10, 30)}

	// Кандидат ровно в "сейчас" остается доступным
	clamped := clampToNow(candidates, utc(10, 0))
	assert.Equal(t, []time.Time{utc(10, 0), utc(10, 30)}, clamped)

	// "Сейчас" между слотами отрезает и текущий неполный слот
	clamped = clampToNow(candidates, utc(9, 15))
	assert.Equal(t, []time.Time{utc(9, 30), utc(10, 0), utc(10, 30)}, clamped)

	// Все кандидаты в прошлом
	assert.Empty(t, clampToNow(candidates, utc(11, 0)))

	// Все кандидаты в будущем
	assert.Equal(t, candidates, clampToNow(candidates, utc(8, 0)))
}

func TestIsSameDay(t *testing.T) {
	assert.True(t, isSameDay(utc(0, 0), utc(23, 59)))
	assert.False(t, isSameDay(utc(0, 0), time.Date(2025, 11, 11, 0, 0, 0, 0, time.UTC)))
}

func TestFormatSlots_ConvertsToBusinessTimezone(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	// 13:00 UTC = 10:00 в Сан-Паулу (UTC-3)
	slots := []time.Time{time.Date(2025, 11, 10, 13, 0, 0, 0, time.UTC)}
	formatted := formatSlots(slots, loc)

	require.Len(t, formatted, 1)
	assert.Equal(t, types.TimeString("10:00"), formatted[0])
}

func TestResolveLocation(t *testing.T) {
	loc, err := resolveLocation("America/Sao_Paulo")
	require.NoError(t, err)
	assert.Equal(t, "America/Sao_Paulo", loc.String())

	// Пустая таймзона заменяется дефолтной
	loc, err = resolveLocation("")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTimezone, loc.String())

	_, err = resolveLocation("Mars/Olympus_Mons")
	require.ErrorIs(t, err, ErrInvalidSchedule)
}

func TestIsDateInPast(t *testing.T) {
	now := time.Date(2025, 11, 10, 15, 30, 0, 0, time.UTC)

	assert.True(t, isDateInPast(time.Date(2025, 11, 9, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, isDateInPast(time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, isDateInPast(time.Date(2025, 11, 11, 0, 0, 0, 0, time.UTC), now))
	assert.True(t, isDateInPast(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), now))
}
