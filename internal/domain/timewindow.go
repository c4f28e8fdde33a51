package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/luizvb/gendaia-sub001/pkg/types"
)

// Ошибки резолва окна работы
var (
	// ErrInvalidWindow возвращается, когда время закрытия не позже времени открытия
	ErrInvalidWindow = errors.New("domain: close time must be after open time")

	// ErrInvalidGranularity возвращается при некорректном шаге сетки слотов
	ErrInvalidGranularity = errors.New("domain: slot granularity must be positive")
)

// TimeWindow окно работы бизнеса на конкретную дату
// Start и End - абсолютные инстанты, привязанные к таймзоне бизнеса,
// поэтому вся слотовая арифметика корректна независимо от таймзоны процесса
type TimeWindow struct {
	Start              time.Time
	End                time.Time
	GranularityMinutes int
}

// NewTimeWindow резолвит окно работы для даты date по времени открытия/закрытия
// в таймзоне loc. Возвращает ErrInvalidWindow, если close не строго позже open
func NewTimeWindow(date time.Time, open, close types.TimeString, granularityMinutes int, loc *time.Location) (TimeWindow, error) {
	if granularityMinutes <= 0 {
		return TimeWindow{}, fmt.Errorf("%w: %d", ErrInvalidGranularity, granularityMinutes)
	}

	start, err := CombineDateTime(date, open, loc)
	if err != nil {
		return TimeWindow{}, err
	}

	end, err := CombineDateTime(date, close, loc)
	if err != nil {
		return TimeWindow{}, err
	}

	if !start.Before(end) {
		return TimeWindow{}, fmt.Errorf("%w: open=%s close=%s", ErrInvalidWindow, open, close)
	}

	return TimeWindow{Start: start, End: end, GranularityMinutes: granularityMinutes}, nil
}

// Length возвращает длину окна
func (w TimeWindow) Length() time.Duration {
	return w.End.Sub(w.Start)
}

// Candidates генерирует кандидатов на начало слота длительностью duration.
// Старты идут строго по возрастанию от открытия с шагом GranularityMinutes;
// кандидат попадает в результат, только если start+duration <= close.
// Если duration длиннее окна, результат пуст. Кратность duration шагу сетки
// не требуется - последний влезающий кандидат включается
func (w TimeWindow) Candidates(duration time.Duration) []time.Time {
	candidates := make([]time.Time, 0)
	if duration <= 0 {
		return candidates
	}

	step := time.Duration(w.GranularityMinutes) * time.Minute

	for start := w.Start; start.Before(w.End); start = start.Add(step) {
		if start.Add(duration).After(w.End) {
			break
		}
		candidates = append(candidates, start)
	}

	return candidates
}

// CombineDateTime собирает абсолютный инстант из календарной даты date,
// времени суток tod и таймзоны loc
func CombineDateTime(date time.Time, tod types.TimeString, loc *time.Location) (time.Time, error) {
	hour, minute, err := tod.Clock()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, loc), nil
}
