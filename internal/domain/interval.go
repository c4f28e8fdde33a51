package domain

import "time"

// Interval полуоткрытый временной интервал [Start, End) на абсолютных инстантах
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval создает интервал от start длительностью duration
func NewInterval(start time.Time, duration time.Duration) Interval {
	return Interval{Start: start, End: start.Add(duration)}
}

// IsValid проверяет инвариант Start < End
func (i Interval) IsValid() bool {
	return i.Start.Before(i.End)
}

// Duration возвращает длительность интервала
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Overlaps проверяет пересечение двух полуоткрытых интервалов
// Интервалы пересекаются, только если начало одного СТРОГО раньше конца другого
// и наоборот. Совпадение границ (back-to-back записи) пересечением не считается:
//
//	[10:00,10:30) и [10:30,11:00) → НЕТ пересечения
//	[10:00,10:30) и [10:15,10:45) → ЕСТЬ пересечение
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && i.End.After(other.Start)
}
