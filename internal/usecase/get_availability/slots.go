package get_availability

import (
	"fmt"
	"time"

	"github.com/luizvb/gendaia-sub001/internal/domain"
	"github.com/luizvb/gendaia-sub001/pkg/types"
)

// resolveLocation загружает таймзону бизнеса
// Пустая таймзона в настройках тенанта заменяется дефолтной,
// арифметика никогда не выполняется в таймзоне процесса
func resolveLocation(timezone string) (*time.Location, error) {
	if timezone == "" {
		timezone = domain.DefaultTimezone
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown timezone %q", ErrInvalidSchedule, timezone)
	}

	return loc, nil
}

// freeSlots фильтрует кандидатов по занятым интервалам
// candidates отсортированы по возрастанию (инвариант генератора),
// appointments отсортированы по start_time ASC (инвариант репозитория),
// поэтому обе коллекции проходятся одним сканированием с ранним выходом
func freeSlots(candidates []time.Time, duration time.Duration, appointments []*domain.Appointment) []time.Time {
	free := make([]time.Time, 0, len(candidates))

	idx := 0
	for _, start := range candidates {
		candidate := domain.NewInterval(start, duration)

		// Записи, закончившиеся до начала кандидата, не пересекутся
		// и со всеми последующими кандидатами
		for idx < len(appointments) && !appointments[idx].EndTime.After(candidate.Start) {
			idx++
		}

		conflict := false
		for i := idx; i < len(appointments); i++ {
			appt := appointments[i]

			// Отмененные и завершенные записи не блокируют слоты
			if !appt.Blocks() {
				continue
			}

			// Записи дальше по списку начинаются не раньше конца кандидата
			if !appt.StartTime.Before(candidate.End) {
				break
			}

			if candidate.Overlaps(appt.Interval()) {
				conflict = true
				break
			}
		}

		if !conflict {
			free = append(free, start)
		}
	}

	return free
}

// formatSlots конвертирует абсолютные инстанты в локальное время бизнеса
// Единственная точка форматирования времени для внешнего представления
func formatSlots(slots []time.Time, loc *time.Location) []types.TimeString {
	formatted := make([]types.TimeString, len(slots))
	for i, slot := range slots {
		formatted[i] = types.NewTimeString(slot.In(loc))
	}
	return formatted
}

// clampToNow отбрасывает кандидатов, начинающихся раньше now
// Кандидаты отсортированы по возрастанию, достаточно найти первый подходящий
func clampToNow(candidates []time.Time, now time.Time) []time.Time {
	for i, start := range candidates {
		if !start.Before(now) {
			return candidates[i:]
		}
	}
	return candidates[:0]
}

// isSameDay проверяет совпадение календарной даты
func isSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня в таймзоне бизнеса
func isDateInPast(date, now time.Time) bool {
	y1, m1, d1 := date.Date()
	y2, m2, d2 := now.Date()
	if y1 != y2 {
		return y1 < y2
	}
	if m1 != m2 {
		return m1 < m2
	}
	return d1 < d2
}
